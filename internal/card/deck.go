package card

import (
	"github.com/alexisbeaulieu97/metafront/internal/assets"
	"github.com/alexisbeaulieu97/metafront/internal/theme"
)

// Identifiers of the built-in cards, in screen order.
const (
	IDGrocery          = "grocery"
	IDSpiritualGoals   = "spiritual_goals"
	IDPersonalGrooming = "personal_grooming"
	IDToDoList         = "todo_list"
	IDKitchenMenu      = "kitchen_menu"
)

// accentOverrides tints every text-bearing field with one colour. The badge
// takes the colour as its background; the others as foreground.
func accentOverrides(title, body string) map[theme.Field]theme.Style {
	return map[theme.Field]theme.Style{
		theme.FieldTitle:         {Foreground: title},
		theme.FieldDescription:   {Foreground: body},
		theme.FieldProgressLabel: {Foreground: body},
		theme.FieldCountBadge:    {Background: body},
		theme.FieldProgressBar:   {Foreground: body},
	}
}

func withAvatar(overrides map[theme.Field]theme.Style, width, height int) map[theme.Field]theme.Style {
	overrides[theme.FieldAvatar] = theme.Style{Width: width, Height: height}
	return overrides
}

// Deck returns the dashboard's cards in display order: Grocery,
// SpiritualGoals, PersonalGrooming, ToDoList, KitchenMenu. Each call returns
// fresh values.
func Deck() []Config {
	return []Config{
		MustNew(Config{
			ID:            IDGrocery,
			Title:         "Grocery List",
			Description:   "Add needed items.",
			ProgressLabel: "Bought 70%",
			ProgressRatio: 0.7,
			Avatar:        assets.AvatarDefault,
			CountLabel:    "Items",
			ItemsCount:    200,
			Gradient:      []string{"#9CF4F5", "#BEF8F9"},
			Overrides:     accentOverrides("#086378", "#086378"),
		}),
		MustNew(Config{
			ID:            IDSpiritualGoals,
			Title:         "Spiritual Goals",
			Description:   "Add your spiritual goals.",
			ProgressLabel: "Achieved 30%",
			ProgressRatio: 0.3,
			Avatar:        assets.AvatarDefault,
			CountLabel:    "Goals",
			ItemsCount:    10,
			Gradient:      []string{"#98FBCC", "#BCFBDC"},
			Overrides:     accentOverrides("#109166", "#109166"),
		}),
		MustNew(Config{
			ID:            IDPersonalGrooming,
			Title:         "Personal Grooming",
			Description:   "Add your grooming tasks in list.",
			ProgressLabel: "Completed 80%",
			ProgressRatio: 0.8,
			Avatar:        assets.AvatarDefault,
			CountLabel:    "Tasks",
			ItemsCount:    10,
			Gradient:      []string{"#fadee6", "#fadee6"},
			Overrides:     withAvatar(accentOverrides("#C34C6C", "#C34C6C"), 11, 8),
		}),
		MustNew(Config{
			ID:            IDToDoList,
			Title:         "Things To Do",
			Description:   "Add tasks in your to do list.",
			ProgressLabel: "Completed 40%",
			ProgressRatio: 0.4,
			Avatar:        assets.AvatarDefault,
			CountLabel:    "Tasks",
			ItemsCount:    15,
			Gradient:      []string{"#f5b7a6", "#f5b7a6"},
			Overrides:     withAvatar(accentOverrides("#e36a4a", "#e36a4a"), 12, 8),
		}),
		MustNew(Config{
			ID:            IDKitchenMenu,
			Title:         "Kitchen Menu",
			Description:   "Add items to your list.",
			ProgressLabel: "Cooked 70%",
			ProgressRatio: 0.7,
			Avatar:        assets.AvatarDefault,
			CountLabel:    "Recipes",
			ItemsCount:    500,
			Gradient:      []string{"#f7deb7", "#f7deb7"},
			Overrides:     withAvatar(accentOverrides("#D88D1B", "#d88d1b"), 15, 8),
		}),
	}
}
