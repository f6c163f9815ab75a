package memory

import "github.com/forkpath-dev/forkpath/pkg/domain"

// Menu returns the built-in food-preference tree: a three-level walk from
// cuisine to a concrete dish preference.
func Menu() *Source {
	return New("q1_food_type",
		domain.Question{
			ID:      "q1_food_type",
			Prompt:  "What kind of food are you in the mood for?",
			Options: []string{"Italian", "Mexican", "Indian"},
			Branches: map[string]string{
				"Italian": "q2_italian_preference",
				"Mexican": "q2_mexican_spice",
				"Indian":  "q2_indian_dish",
			},
		},
		domain.Question{
			ID:      "q2_italian_preference",
			Prompt:  "Do you prefer pasta or pizza?",
			Options: []string{"Pasta", "Pizza"},
			Branches: map[string]string{
				"Pasta": "q3_pasta_sauce",
				"Pizza": "q3_pizza_toppings",
			},
		},
		domain.Question{
			ID:      "q2_mexican_spice",
			Prompt:  "Do you like your Mexican food spicy or mild?",
			Options: []string{"Spicy", "Mild"},
			Branches: map[string]string{
				"Spicy": "q3_mexican_dish",
				"Mild":  "q3_mexican_dish",
			},
		},
		domain.Question{
			ID:      "q2_indian_dish",
			Prompt:  "Great choice! Which Indian dish sounds good?",
			Options: []string{"Curry", "Biryani", "Naan with Dal"},
			Branches: map[string]string{
				"Curry":         domain.TerminalID,
				"Biryani":       domain.TerminalID,
				"Naan with Dal": domain.TerminalID,
			},
		},
		domain.Question{
			ID:      "q3_pasta_sauce",
			Prompt:  "Which pasta sauce would you prefer?",
			Options: []string{"Marinara", "Alfredo", "Pesto"},
			Branches: map[string]string{
				"Marinara": domain.TerminalID,
				"Alfredo":  domain.TerminalID,
				"Pesto":    domain.TerminalID,
			},
		},
		domain.Question{
			ID:      "q3_pizza_toppings",
			Prompt:  "Any specific pizza toppings in mind?",
			Options: []string{"Pepperoni", "Mushrooms", "Vegetables"},
			Branches: map[string]string{
				"Pepperoni":  domain.TerminalID,
				"Mushrooms":  domain.TerminalID,
				"Vegetables": domain.TerminalID,
			},
		},
		domain.Question{
			ID:      "q3_mexican_dish",
			Prompt:  "What kind of Mexican dish are you thinking of?",
			Options: []string{"Tacos", "Burritos", "Enchiladas"},
			Branches: map[string]string{
				"Tacos":      domain.TerminalID,
				"Burritos":   domain.TerminalID,
				"Enchiladas": domain.TerminalID,
			},
		},
	)
}
