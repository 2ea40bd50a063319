package partrequest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"open to analysis", StatusOpen, StatusAnalysis, true},
		{"open to sent skips steps", StatusOpen, StatusSent, true},
		{"analysis to quoted", StatusAnalysis, StatusQuoted, true},
		{"quoted to sent", StatusQuoted, StatusSent, true},
		{"open to canceled", StatusOpen, StatusCanceled, true},
		{"quoted back to open", StatusQuoted, StatusOpen, false},
		{"sent to canceled", StatusSent, StatusCanceled, false},
		{"canceled to open", StatusCanceled, StatusOpen, false},
		{"same status", StatusOpen, StatusOpen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func validContact() Contact {
	return Contact{Name: "João da Silva", Phone: "+55 51 98888-0000"}
}

func validShipping() ShippingAddress {
	return ShippingAddress{
		Name:    "João da Silva",
		Zip:     "96810-000",
		Address: "Rua das Flores",
		City:    "Santa Cruz do Sul",
		UF:      "RS",
	}
}

func TestNewPartRequest(t *testing.T) {
	partID := uint(4)
	item, err := NewItem(&partID, "", 2)
	require.NoError(t, err)

	req, err := NewPartRequest(10, 7, validContact(), validShipping(), "", []Item{item})
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, req.Status())
	require.Len(t, req.Items(), 1)
	assert.Equal(t, 2, req.Items()[0].Quantity())
}

func TestNewPartRequestNotesOnly(t *testing.T) {
	req, err := NewPartRequest(10, 7, validContact(), validShipping(), "Preciso da peça que fica ao lado do motor", nil)
	require.NoError(t, err)
	assert.Empty(t, req.Items())
}

func TestNewPartRequestHeaderOnly(t *testing.T) {
	req, err := NewPartRequest(10, 7, validContact(), validShipping(), "", nil)
	require.NoError(t, err)
	assert.Empty(t, req.Items())
	assert.Empty(t, req.Notes())
}

func TestNewPartRequestValidatesContactAndShipping(t *testing.T) {
	_, err := NewPartRequest(10, 7, Contact{Phone: "51 3711-0000"}, validShipping(), "notas", nil)
	assert.Error(t, err)

	_, err = NewPartRequest(10, 7, validContact(), ShippingAddress{}, "notas", nil)
	assert.Error(t, err)

	bad := validShipping()
	bad.UF = "RGS"
	_, err = NewPartRequest(10, 7, validContact(), bad, "notas", nil)
	assert.Error(t, err)
}

func TestNewItemValidation(t *testing.T) {
	zero := uint(0)

	_, err := NewItem(nil, "", 1)
	assert.Error(t, err)

	_, err = NewItem(&zero, "", 1)
	assert.Error(t, err)

	partID := uint(4)
	_, err = NewItem(&partID, "", 0)
	assert.Error(t, err)

	item, err := NewItem(nil, "lâmina do conjunto de corte", 3)
	require.NoError(t, err)
	assert.Nil(t, item.PartID())
}

func TestPartRequestChangeStatus(t *testing.T) {
	req, err := NewPartRequest(10, 7, validContact(), validShipping(), "notas", nil)
	require.NoError(t, err)

	require.NoError(t, req.ChangeStatus(StatusAnalysis))
	require.NoError(t, req.ChangeStatus(StatusSent))

	err = req.ChangeStatus(StatusCanceled)
	assert.Error(t, err)
}
