package dto

import (
	"encoding/json"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummariesOmitAssociations(t *testing.T) {
	restaurant := models.Restaurant{
		ID:      1,
		Name:    "Karen's Pizza Shack",
		Address: "address1",
		RestaurantPizzas: []models.RestaurantPizza{
			{ID: 1, Price: 5, RestaurantID: 1, PizzaID: 1},
		},
	}

	raw, err := json.Marshal(NewRestaurantSummaries([]models.Restaurant{restaurant}))
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 1)
	assert.ElementsMatch(t, []string{"id", "name", "address"}, keys(decoded[0]))
}

func TestEmptySummariesEncodeAsArray(t *testing.T) {
	raw, err := json.Marshal(NewPizzaSummaries(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	raw, err = json.Marshal(NewRestaurantDetail(models.Restaurant{ID: 3}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"restaurant_pizzas":[]`)
}

func TestRestaurantDetailNestsPizza(t *testing.T) {
	restaurant := models.Restaurant{
		ID:      2,
		Name:    "Sanjay's Pizza",
		Address: "address2",
		RestaurantPizzas: []models.RestaurantPizza{
			{
				ID: 4, Price: 12.5, RestaurantID: 2, PizzaID: 7,
				Pizza: models.Pizza{ID: 7, Name: "Geri", Description: "Dough, Tomato Sauce, Cheese"},
			},
		},
	}

	detail := NewRestaurantDetail(restaurant)
	require.Len(t, detail.RestaurantPizzas, 1)

	raw, err := json.Marshal(detail)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	associations := decoded["restaurant_pizzas"].([]interface{})
	first := associations[0].(map[string]interface{})
	assert.ElementsMatch(t, []string{"id", "price", "pizza_id", "restaurant_id", "pizza"}, keys(first))

	pizza := first["pizza"].(map[string]interface{})
	assert.Equal(t, "Geri", pizza["name"])
	assert.NotContains(t, pizza, "restaurant_pizzas")
}

func TestRestaurantPizzaDetailNestsBothEnds(t *testing.T) {
	rp := models.RestaurantPizza{
		ID: 9, Price: 10.99, RestaurantID: 1, PizzaID: 1,
		Restaurant: models.Restaurant{ID: 1, Name: "Kiki's Pizza", Address: "address3"},
		Pizza:      models.Pizza{ID: 1, Name: "Melanie", Description: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}

	raw, err := json.Marshal(NewRestaurantPizzaDetail(rp))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.ElementsMatch(t, []string{"id", "price", "pizza_id", "restaurant_id", "pizza", "restaurant"}, keys(decoded))
	assert.Equal(t, 10.99, decoded["price"])
	assert.Equal(t, "Kiki's Pizza", decoded["restaurant"].(map[string]interface{})["name"])
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
