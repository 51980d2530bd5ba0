package handlers

import (
	"net/http"

	"github.com/visourastudio-blip/pizza-do-ze/catalog"
	"github.com/visourastudio-blip/pizza-do-ze/statemachine"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the full catalog (public)
func GetMenu(c *gin.Context) {
	pizzas := catalog.Pizzas
	if category := c.Query("category"); category != "" {
		filtered := make([]catalog.Pizza, 0, len(pizzas))
		for _, p := range pizzas {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		pizzas = filtered
	}

	sizes := make([]gin.H, 0, len(catalog.Sizes))
	for _, s := range catalog.Sizes {
		sizes = append(sizes, gin.H{"id": s, "label": catalog.SizeLabel(s)})
	}

	c.JSON(http.StatusOK, gin.H{
		"pizzas":    pizzas,
		"beverages": catalog.Beverages,
		"desserts":  catalog.Desserts,
		"crusts":    catalog.Crusts,
		"extras":    catalog.Extras,
		"sizes":     sizes,
	})
}

// GetPizza returns a single catalog pizza (public)
func GetPizza(c *gin.Context) {
	pizza, ok := catalog.PizzaByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pizza not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pizza": pizza})
}

// GetStatusFlow returns the order status sequences for informational purposes
func GetStatusFlow(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sequences":       statemachine.AllSequences(),
		"terminal_states": []string{"delivered", "ready_for_pickup"},
		"description":     "Pizzeria order lifecycle. Orders only move forward through the sequence for their fulfillment type.",
	})
}
