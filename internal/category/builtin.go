package category

import "imposter_server/internal/domain"

// builtinCatalog is the fixed server-side catalog. Hints are what imposters
// see instead of the word, so they should narrow the word down without
// giving it away.
var builtinCatalog = []domain.Category{
	{
		ID:   "animals",
		Name: "Animals",
		Words: []domain.WordEntry{
			{Word: "Elephant", Hint: "Big and gray"},
			{Word: "Penguin", Hint: "Cold climate"},
			{Word: "Kangaroo", Hint: "Jumps around"},
			{Word: "Octopus", Hint: "Lives underwater"},
			{Word: "Giraffe", Hint: "Hard to miss"},
			{Word: "Hamster", Hint: "Common pet"},
			{Word: "Crocodile", Hint: "Watch your step"},
			{Word: "Owl", Hint: "Active at night"},
			{Word: "Dolphin", Hint: "Very smart"},
			{Word: "Flamingo", Hint: "Stands out in a crowd"},
		},
	},
	{
		ID:   "food",
		Name: "Food & Drinks",
		Words: []domain.WordEntry{
			{Word: "Pizza", Hint: "Often delivered"},
			{Word: "Sushi", Hint: "Usually raw"},
			{Word: "Banana", Hint: "Fruit"},
			{Word: "Espresso", Hint: "Keeps you awake"},
			{Word: "Pancakes", Hint: "Breakfast classic"},
			{Word: "Tacos", Hint: "Handheld"},
			{Word: "Popcorn", Hint: "Movie night"},
			{Word: "Lemonade", Hint: "Summer drink"},
			{Word: "Spaghetti", Hint: "Messy to eat"},
			{Word: "Chocolate", Hint: "Sweet"},
		},
	},
	{
		ID:   "places",
		Name: "Places",
		Words: []domain.WordEntry{
			{Word: "Airport", Hint: "Lots of waiting"},
			{Word: "Beach", Hint: "Bring sunscreen"},
			{Word: "Library", Hint: "Keep quiet"},
			{Word: "Casino", Hint: "House always wins"},
			{Word: "Hospital", Hint: "Hope you don't need it"},
			{Word: "Gym", Hint: "New year crowds"},
			{Word: "Museum", Hint: "Don't touch"},
			{Word: "Supermarket", Hint: "Weekly errand"},
			{Word: "Cinema", Hint: "Dark room"},
			{Word: "Campsite", Hint: "Sleep outside"},
		},
	},
	{
		ID:   "jobs",
		Name: "Jobs",
		Words: []domain.WordEntry{
			{Word: "Firefighter", Hint: "Emergency response"},
			{Word: "Chef", Hint: "Works in heat"},
			{Word: "Pilot", Hint: "Travels a lot"},
			{Word: "Dentist", Hint: "People fear the visit"},
			{Word: "Teacher", Hint: "Long holidays"},
			{Word: "Plumber", Hint: "Called when it leaks"},
			{Word: "Barista", Hint: "Morning rush"},
			{Word: "Astronaut", Hint: "Rare profession"},
			{Word: "Lawyer", Hint: "Bills by the hour"},
			{Word: "Photographer", Hint: "Captures moments"},
		},
	},
	{
		ID:   "sports",
		Name: "Sports",
		Words: []domain.WordEntry{
			{Word: "Tennis", Hint: "Back and forth"},
			{Word: "Bowling", Hint: "Rented shoes"},
			{Word: "Surfing", Hint: "Needs waves"},
			{Word: "Chess", Hint: "No sweat required"},
			{Word: "Boxing", Hint: "Gloves on"},
			{Word: "Golf", Hint: "Quiet please"},
			{Word: "Skiing", Hint: "Winter season"},
			{Word: "Darts", Hint: "Pub classic"},
			{Word: "Marathon", Hint: "Takes hours"},
			{Word: "Karate", Hint: "Belts and ranks"},
		},
	},
	{
		ID:   "objects",
		Name: "Everyday Objects",
		Words: []domain.WordEntry{
			{Word: "Umbrella", Hint: "Weather dependent"},
			{Word: "Toothbrush", Hint: "Twice a day"},
			{Word: "Backpack", Hint: "Carried around"},
			{Word: "Candle", Hint: "Don't leave unattended"},
			{Word: "Scissors", Hint: "Two blades"},
			{Word: "Ladder", Hint: "Unlucky to walk under"},
			{Word: "Mirror", Hint: "Seven years bad luck"},
			{Word: "Remote", Hint: "Always missing"},
			{Word: "Wallet", Hint: "Back pocket"},
			{Word: "Headphones", Hint: "Personal bubble"},
		},
	},
}
