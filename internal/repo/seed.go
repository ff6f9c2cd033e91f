package repo

import dom "yuletide/internal/domain"

// SeedGifts is inserted by SeedIfEmpty on a fresh database. The strings must
// stay byte-for-byte identical to what existing deployments were seeded with.
var SeedGifts = []dom.GiftFields{
	// Niko
	{Kid: "Niko", Item: "VTech Touch and Learn Activity Desk 4-in-1 (Age 3–5)", Link: "https://www.amazon.com/dp/B01LXLAFJP"},
	{Kid: "Niko", Item: "LeapFrog Prep for Preschool Math Book", Link: "https://www.amazon.com/dp/B0CSNB7BQD"},
	{Kid: "Niko", Item: "Montessori Mama Wooden Puzzle for Kids", Link: "https://www.amazon.com/dp/B0DHPXVN8B"},
	{Kid: "Niko", Item: "Learning Resources All Ready for Kindergarten", Link: "https://www.amazon.com/dp/B00SJ66RS6"},
	{Kid: "Niko", Item: "Aizweb Classroom Calendar Pocket Chart", Link: "https://www.amazon.com/dp/B0CBBKBXDS"},

	// Abby
	{Kid: "Abby", Item: "Ms Rachel Sing and Talk Toy Doll", Link: "https://www.amazon.com/dp/B0CX24138S"},
	{Kid: "Abby", Item: "Fisher-Price Baby's First Blocks and Stack Toy", Link: "https://www.amazon.com/dp/B077H5G2Q3"},
	{Kid: "Abby", Item: "Adena Montessori 4-in-1 Wooden Play Kit", Link: "https://www.amazon.com/dp/B09TW84N12"},
	{Kid: "Abby", Item: "Any activity table"},

	// Ben
	{Kid: "Ben", Item: "Beyblade X String Launcher Set (2 Pack)", Link: "https://www.amazon.com/String-Launcher-Players-Battles-Spinning/dp/B0DSHZSKK4"},
	{Kid: "Ben", Item: "Battling Tops Game Set (Arena + Launchers)", Link: "https://www.amazon.com/dp/B0D1K222SP"},
	{Kid: "Ben", Item: "Beyblade X Dagger Dran 4-70Q Booster", Link: "https://www.amazon.com/BEYBLADE-Dagger-Booster-Takara-Battling/dp/B0DN6YYL8G"},
	{Kid: "Ben", Item: "Roblox Robux Digital Gift Card", Link: "https://www.amazon.com/Robux-Roblox-Online-Game-Code/dp/B07RZ74VLR"},
	{Kid: "Ben", Item: "Italian Brainrot Squishy Figures (24 pcs)", Link: "https://www.amazon.com/Italian-Brainrot-Collection-Silicone-Dashboard/dp/B0FTMS4PPQ"},

	// Olive
	{Kid: "Olive", Item: "Pottery Wheel for Kids – Complete Painting Kit", Link: "https://www.amazon.com/Pottery-Wheel-Kids-Complete-Painting/dp/B0D5R6WWPZ"},
	{Kid: "Olive", Item: "Acrylic Painting Creativity Set (Metallic + Standard)", Link: "https://www.amazon.com/Painting-Creativity-Supplies-Metallic-Standard/dp/B08HD89CX6"},
	{Kid: "Olive", Item: "Desire Deluxe Temporary Hair Colour / Makeup Set", Link: "https://www.amazon.com/Desire-Deluxe-Makeup-Temporary-Colour/dp/B07FTGLWDR"},
	{Kid: "Olive", Item: "Minecraft Minecoins Pack (Digital Code)", Link: "https://www.amazon.com/Minecraft-Minecoins-Pack-Coins-Digital/dp/B07FYN4SBM"},

	// Placeholder rows, kid only.
	{Kid: "Elanor"},
	{Kid: "Henry"},
	{Kid: "Yasha"},
	{Kid: "Rown"},
}
