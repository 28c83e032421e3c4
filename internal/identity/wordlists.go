package identity

// The two word lists used to build tenant usernames. An adjective and a noun
// are drawn uniformly at random and joined with an underscore.

var adjectives = []string{
	"Swift", "Silent", "Clever", "Lunar", "Solar", "Electric", "Mystic", "Crimson", "Azure", "Noble",
	"Wandering", "Epic", "Phantom", "Iron", "Golden", "Ancient", "Hidden", "Jolly", "Quiet", "Velvet",
	"Rusty", "Cosmic", "Lucky", "Savage", "Happy", "Midnight", "Fuzzy", "Dark", "Bright", "Silent",
	"Steel", "Virtual", "Alpha", "Omega", "Echo", "Neon", "Hyper", "Ghost", "Wild", "Lonely",
	"Bold", "Brave", "Curious", "Dapper", "Eager", "Fierce", "Gentle", "Honest", "Icy", "Jaded",
	"Keen", "Lazy", "Mighty", "Nervous", "Odd", "Proud", "Quick", "Relentless", "Shiny", "Tiny",
	"Untamed", "Vivid", "Witty", "Expert", "Young", "Zesty", "Royal", "Quirky", "Prime", "Ornate",
	"Natural", "Majestic", "Kinetic", "Jubilant", "Infinite", "Hollow", "Grand", "Frosty", "Enchanted", "Dynamic",
	"Crystalline", "Blazing", "Atomic", "Amber", "Tropical", "Spectral", "Rocky", "Polar", "Mystical", "Mechanical",
	"Legendary", "Industrial", "Hollow", "Galactic", "Fiery", "Eternal", "Digital", "Chaotic", "Blitz", "Atomic",
}

var nouns = []string{
	"Phoenix", "Wolf", "Ninja", "Dragon", "Hawk", "Captain", "Guardian", "Knight", "Samurai", "Wizard",
	"terminal", "Drifter", "Runner", "Panda", "Fox", "Raven", "Titan", "Giant", "Dwarf", "Elf",
	"Goblin", "Spectre", "Lion", "Tiger", "Bear", "Falcon", "Eagle", "Owl", "Shark", "Whale",
	"Rider", "Stranger", "Pilgrim", "Nomad", "Warrior", "Sage", "Bard", "Merchant", "Emperor", "Duke",
	"Prince", "King", "Queen", "Robot", "Android", "Cyborg", "Algorithm", "Code", "Byte", "Pixel",
	"Catalyst", "Vortex", "Nebula", "Galaxy", "Comet", "Meteor", "Planet", "Star", "Sun", "Moon",
	"Thunder", "Lightning", "Storm", "Rain", "River", "Mountain", "Valley", "Canyon", "Forest", "Desert",
	"Ocean", "Island", "Glacier", "Volcano", "Echo", "Shadow", "Spirit", "Ghost", "Legend", "Myth",
	"Hammer", "Anvil", "Forge", "Sword", "Shield", "Arrow", "Archer", "Gunner", "Pilot", "Driver",
	"Explorer", "Detective", "Artist", "Scholar", "Genius", "Champion", "Hero", "Villain", "Jester", "Oracle",
}
