package component

import "fmt"

type FoodKind uint8

const (
	FoodCarrot FoodKind = iota
	FoodApple
	FoodBlueberries
	FoodClover
)

var foodKinds = [...]struct {
	name        string
	fillingness uint8
}{
	FoodCarrot:      {"carrot", 3},
	FoodApple:       {"apple", 6},
	FoodBlueberries: {"blueberries", 1},
	FoodClover:      {"clover", 0},
}

func (k FoodKind) String() string {
	if int(k) >= len(foodKinds) {
		return "unknown"
	}
	return foodKinds[k].name
}

// Fillingness is how much belly the food takes up.
func (k FoodKind) Fillingness() uint8 {
	if int(k) >= len(foodKinds) {
		return 0
	}
	return foodKinds[k].fillingness
}

// ParseFoodKind maps a name such as "apple" to its kind.
func ParseFoodKind(name string) (FoodKind, error) {
	for i, f := range foodKinds {
		if f.name == name {
			return FoodKind(i), nil
		}
	}
	return 0, fmt.Errorf("component: unknown food kind %q", name)
}

type Food struct {
	Kind        FoodKind
	Fillingness uint8
}

func NewFood(kind FoodKind) Food {
	return Food{Kind: kind, Fillingness: kind.Fillingness()}
}

var FoodComponent = NewComponent[Food]()
