package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("Admin").Valid())
}

func TestUnit_Valid(t *testing.T) {
	for _, u := range []Unit{UnitKg, UnitGram, UnitLiters, UnitMl, UnitPieces, UnitPacks} {
		assert.True(t, u.Valid(), u)
	}
	assert.False(t, Unit("").Valid())
	assert.False(t, Unit("PIECES").Valid())
	assert.False(t, Unit("tons").Valid())
}

func TestUser_Public(t *testing.T) {
	u := User{
		ID:           uuid.New(),
		Name:         "Ann",
		Email:        "ann@example.com",
		PasswordHash: []byte("secret-hash"),
		Role:         RoleAdmin,
	}

	data, err := json.Marshal(u.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-hash")
	assert.NotContains(t, string(data), "password")
	assert.Contains(t, string(data), `"role":"admin"`)
}

func TestShoppingList_ContainsRemove(t *testing.T) {
	list := ShoppingList{Items: []ShoppingListItem{
		{Name: "Milk", Quantity: 1},
		{Name: "Eggs", Quantity: 12},
		{Name: "Milk", Quantity: 2},
	}}

	assert.True(t, list.Contains("Milk"))
	assert.False(t, list.Contains("milk"))
	assert.False(t, list.Contains("Bread"))

	assert.True(t, list.Remove("Milk"))
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Eggs", list.Items[0].Name)
	assert.Equal(t, 2.0, list.Items[1].Quantity)

	assert.False(t, list.Remove("Bread"))
	assert.Len(t, list.Items, 2)
}
