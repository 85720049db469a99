package entity

// Nutrients is the calorie and macro content of an amount of food.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the element-wise sum.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
	}
}

// Scale returns per-100g values converted to the given quantity in grams.
func (n Nutrients) Scale(grams float64) Nutrients {
	factor := grams / 100

	return Nutrients{
		Calories: n.Calories * factor,
		Protein:  n.Protein * factor,
		Carbs:    n.Carbs * factor,
		Fat:      n.Fat * factor,
	}
}
