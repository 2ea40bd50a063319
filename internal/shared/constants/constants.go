package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"

	// Login entry point hinted to unauthenticated portal clients
	LoginPath = "/login"

	// Database table names
	TableUsers            = "users"
	TableMachineModels    = "machine_models"
	TableMachines         = "machines"
	TableSymptoms         = "symptoms"
	TableManuals          = "manuals"
	TableParts            = "parts"
	TablePartCompat       = "part_compatible_models"
	TableTickets          = "tickets"
	TableTicketMedia      = "ticket_media"
	TableTicketMessages   = "ticket_messages"
	TablePartRequests     = "part_requests"
	TablePartRequestItems = "part_request_items"
	TableSiteSettings     = "site_settings"
	TableShowcaseMachines = "showcase_machines"
)
