package catalog

// defaultAchievementTypes is the built-in achievement catalog. Order matters:
// the evaluator iterates this table top to bottom, so output order is stable
// across runs.
var defaultAchievementTypes = []AchievementType{
	// Win streaks.
	{Type: "ON_FIRE", Name: "On Fire", Description: "3 wins in a row", Icon: "🔥", Category: CategoryStreaks, Rarity: RarityCommon},
	{Type: "UNSTOPPABLE", Name: "Unstoppable", Description: "5 wins in a row", Icon: "⚡", Category: CategoryStreaks, Rarity: RarityUncommon},
	{Type: "DOMINATOR", Name: "Dominator", Description: "7 wins in a row", Icon: "👑", Category: CategoryStreaks, Rarity: RarityRare},
	{Type: "PERFECT_TEN", Name: "Perfect Ten", Description: "10 wins in a row", Icon: "💎", Category: CategoryStreaks, Rarity: RarityEpic},
	{Type: "IMMORTAL", Name: "Immortal", Description: "15 wins in a row", Icon: "🌟", Category: CategoryStreaks, Rarity: RarityLegendary},
	{Type: "STALEMATE_ARTIST", Name: "Stalemate Artist", Description: "3 draws in a row", Icon: "🤝", Category: CategoryStreaks, Rarity: RarityRare},

	// Single-match scoring.
	{Type: "HAT_TRICK", Name: "Hat-trick", Description: "Score exactly 3 goals in a match", Icon: "🎩", Category: CategoryGoals, Rarity: RarityCommon},
	{Type: "SNIPER", Name: "Sniper", Description: "Score 5+ goals in a single match", Icon: "🎯", Category: CategoryGoals, Rarity: RarityCommon},
	{Type: "GOAL_MACHINE", Name: "Goal Machine", Description: "Score 7+ goals in a single match", Icon: "🤖", Category: CategoryGoals, Rarity: RarityRare},
	{Type: "PERFECT_STORM", Name: "Perfect Storm", Description: "Score 10+ goals in a single match", Icon: "🌪️", Category: CategoryGoals, Rarity: RarityEpic},

	// Career scoring.
	{Type: "CENTURION", Name: "Centurion", Description: "Score 100 career goals", Icon: "💯", Category: CategoryGoals, Rarity: RarityUncommon},
	{Type: "GOAL_COLLECTOR", Name: "Goal Collector", Description: "Score 250 career goals", Icon: "🧺", Category: CategoryGoals, Rarity: RarityRare},
	{Type: "HALF_THOUSAND", Name: "Half a Thousand", Description: "Score 500 career goals", Icon: "🏛️", Category: CategoryGoals, Rarity: RarityLegendary},
	{Type: "CONSISTENT_THREAT", Name: "Consistent Threat", Description: "Score in 10 consecutive matches", Icon: "🏹", Category: CategoryGoals, Rarity: RarityRare},

	// Defense.
	{Type: "THE_WALL", Name: "The Wall", Description: "Win with a clean sheet", Icon: "🧱", Category: CategoryDefense, Rarity: RarityCommon},
	{Type: "FORTRESS", Name: "Fortress", Description: "Keep 3 career clean sheets", Icon: "🏰", Category: CategoryDefense, Rarity: RarityUncommon},
	{Type: "IRON_CURTAIN", Name: "Iron Curtain", Description: "Keep 5 career clean sheets", Icon: "⛓️", Category: CategoryDefense, Rarity: RarityRare},
	{Type: "DOUBLE_SHUTOUT", Name: "Double Shutout", Description: "Two clean-sheet wins in a row", Icon: "🔒", Category: CategoryDefense, Rarity: RarityRare},

	// Winning margins.
	{Type: "NAIL_BITER", Name: "Nail Biter", Description: "Win by exactly 1 goal", Icon: "😬", Category: CategoryWins, Rarity: RarityCommon},
	{Type: "DEMOLITION", Name: "Demolition", Description: "Win by 5+ goals", Icon: "💥", Category: CategoryWins, Rarity: RarityUncommon},
	{Type: "MASSACRE", Name: "Massacre", Description: "Win by 7+ goals", Icon: "🗡️", Category: CategoryWins, Rarity: RarityRare},
	{Type: "ANNIHILATION", Name: "Annihilation", Description: "Win by 10+ goals", Icon: "☄️", Category: CategoryWins, Rarity: RarityEpic},
	{Type: "CLUTCH_MASTER", Name: "Clutch Master", Description: "Win 5 matches by a single goal", Icon: "🫀", Category: CategoryWins, Rarity: RarityRare},

	// Win milestones.
	{Type: "FIRST_BLOOD", Name: "First Blood", Description: "Win your first match", Icon: "🩸", Category: CategoryMilestones, Rarity: RarityCommon},
	{Type: "HIGH_FIVE", Name: "High Five", Description: "Win 5 matches", Icon: "🖐️", Category: CategoryMilestones, Rarity: RarityCommon},
	{Type: "DOUBLE_DIGITS", Name: "Double Digits", Description: "Win 10 matches", Icon: "🔟", Category: CategoryMilestones, Rarity: RarityCommon},
	{Type: "VETERAN", Name: "Veteran", Description: "Win 25 matches", Icon: "🎖️", Category: CategoryMilestones, Rarity: RarityUncommon},
	{Type: "CHAMPION", Name: "Champion", Description: "Win 50 matches", Icon: "🏆", Category: CategoryMilestones, Rarity: RarityRare},
	{Type: "CONQUEROR", Name: "Conqueror", Description: "Win 75 matches", Icon: "⚔️", Category: CategoryMilestones, Rarity: RarityEpic},
	{Type: "LEGEND", Name: "Legend", Description: "Win 100 matches", Icon: "🐐", Category: CategoryMilestones, Rarity: RarityLegendary},

	// Participation milestones.
	{Type: "DEBUT", Name: "Debut", Description: "Play your first match", Icon: "🎬", Category: CategoryMilestones, Rarity: RarityCommon},
	{Type: "REGULAR", Name: "Regular", Description: "Play 10 matches", Icon: "📅", Category: CategoryMilestones, Rarity: RarityCommon},
	{Type: "DEDICATED", Name: "Dedicated", Description: "Play 50 matches", Icon: "🪑", Category: CategoryMilestones, Rarity: RarityUncommon},
	{Type: "CENTURY_CLUB", Name: "Century Club", Description: "Play 100 matches", Icon: "🏟️", Category: CategoryMilestones, Rarity: RarityRare},
	{Type: "PEACEMAKER", Name: "Peacemaker", Description: "Draw 10 matches", Icon: "🕊️", Category: CategoryMilestones, Rarity: RarityUncommon},

	// Team variety.
	{Type: "GLOBETROTTER", Name: "Globetrotter", Description: "Win with 5 different teams", Icon: "🌍", Category: CategoryTeams, Rarity: RarityCommon},
	{Type: "WORLD_TOUR", Name: "World Tour", Description: "Win with 10 different teams", Icon: "✈️", Category: CategoryTeams, Rarity: RarityUncommon},
	{Type: "COLLECTOR", Name: "Collector", Description: "Win with 20 different teams", Icon: "🗺️", Category: CategoryTeams, Rarity: RarityRare},
	{Type: "AMBASSADOR", Name: "Ambassador", Description: "Win with 30 different teams", Icon: "🛂", Category: CategoryTeams, Rarity: RarityEpic},

	// Club loyalty.
	{Type: "MADRIDISTA", Name: "Madridista", Description: "Win 10 matches with Real Madrid", Icon: "⚪", Category: CategoryTeams, Rarity: RarityUncommon},
	{Type: "CULE", Name: "Culé", Description: "Win 10 matches with Barcelona", Icon: "🔵", Category: CategoryTeams, Rarity: RarityUncommon},
	{Type: "RED_DEVIL", Name: "Red Devil", Description: "Win 10 matches with Manchester United", Icon: "😈", Category: CategoryTeams, Rarity: RarityUncommon},

	// League loyalty.
	{Type: "PREMIER_CLASS", Name: "Premier Class", Description: "Win 10 matches with Premier League teams", Icon: "🦁", Category: CategoryTeams, Rarity: RarityUncommon},
	{Type: "LA_LIGA_LOYALIST", Name: "La Liga Loyalist", Description: "Win 10 matches with La Liga teams", Icon: "🇪🇸", Category: CategoryTeams, Rarity: RarityUncommon},
	{Type: "BUNDESLIGA_BOSS", Name: "Bundesliga Boss", Description: "Win 10 matches with Bundesliga teams", Icon: "🇩🇪", Category: CategoryTeams, Rarity: RarityUncommon},
	{Type: "SERIE_A_SCHOLAR", Name: "Serie A Scholar", Description: "Win 10 matches with Serie A teams", Icon: "🇮🇹", Category: CategoryTeams, Rarity: RarityUncommon},

	// Relative strength.
	{Type: "GIANT_KILLER", Name: "Giant Killer", Description: "Beat a team rated 3+ above yours", Icon: "🪓", Category: CategorySpecial, Rarity: RarityUncommon},
	{Type: "DAVID", Name: "David", Description: "Beat a team rated 5+ above yours", Icon: "🪨", Category: CategorySpecial, Rarity: RarityRare},
	{Type: "MIRACLE_WORKER", Name: "Miracle Worker", Description: "Beat a team rated 7+ above yours", Icon: "✨", Category: CategorySpecial, Rarity: RarityEpic},

	// Scorelines and drama.
	{Type: "CLASSIC_FINISH", Name: "Classic Finish", Description: "Win a match 2-1", Icon: "🎞️", Category: CategorySpecial, Rarity: RarityCommon},
	{Type: "MANITA", Name: "Manita", Description: "Win a match 5-0", Icon: "🖐", Category: CategorySpecial, Rarity: RarityRare},
	{Type: "SEVEN_NIL", Name: "Seven-Nil", Description: "Win a match 7-0", Icon: "7️⃣", Category: CategorySpecial, Rarity: RarityEpic},
	{Type: "GOAL_FEST", Name: "Goal Fest", Description: "Play a match with 8+ total goals", Icon: "🎪", Category: CategorySpecial, Rarity: RarityUncommon},
	{Type: "SNOOZE_FEST", Name: "Snooze Fest", Description: "Play out a 0-0 draw", Icon: "😴", Category: CategorySpecial, Rarity: RarityUncommon},
	{Type: "EXTRA_TIME_HERO", Name: "Extra Time Hero", Description: "Win a match in extra time", Icon: "⏱️", Category: CategorySpecial, Rarity: RarityUncommon},
	{Type: "NERVES_OF_STEEL", Name: "Nerves of Steel", Description: "Win a penalty shootout", Icon: "🥅", Category: CategorySpecial, Rarity: RarityUncommon},
	{Type: "SHOOTOUT_SPECIALIST", Name: "Shootout Specialist", Description: "Win 3 penalty shootouts", Icon: "🎰", Category: CategorySpecial, Rarity: RarityRare},
	{Type: "MARATHON_MATCH", Name: "Marathon Match", Description: "Win a match that went to extra time and penalties", Icon: "🏃", Category: CategorySpecial, Rarity: RarityRare},

	// Comebacks.
	{Type: "BOUNCE_BACK", Name: "Bounce Back", Description: "Win immediately after a loss", Icon: "🏀", Category: CategorySpecial, Rarity: RarityCommon},
	{Type: "REDEMPTION_ARC", Name: "Redemption Arc", Description: "Win by 3+ right after losing by 3+", Icon: "📖", Category: CategorySpecial, Rarity: RarityRare},

	// Hall of shame: losing streaks.
	{Type: "ROCK_BOTTOM", Name: "Rock Bottom", Description: "5 losses in a row", Icon: "📉", Category: CategoryShame, Rarity: RarityCommon},
	{Type: "FREE_FALL", Name: "Free Fall", Description: "7 losses in a row", Icon: "🕳️", Category: CategoryShame, Rarity: RarityUncommon},
	{Type: "CURSED", Name: "Cursed", Description: "10 losses in a row", Icon: "💀", Category: CategoryShame, Rarity: RarityRare},

	// Hall of shame: single-match lowlights.
	{Type: "HUMILIATED", Name: "Humiliated", Description: "Lose by 5+ goals", Icon: "🫣", Category: CategoryShame, Rarity: RarityCommon},
	{Type: "STEAMROLLED", Name: "Steamrolled", Description: "Lose by 7+ goals", Icon: "🚜", Category: CategoryShame, Rarity: RarityUncommon},
	{Type: "OBLITERATED", Name: "Obliterated", Description: "Lose by 10+ goals", Icon: "🌋", Category: CategoryShame, Rarity: RarityRare},
	{Type: "LEAKY_DEFENSE", Name: "Leaky Defense", Description: "Concede 5+ goals in one match", Icon: "🚰", Category: CategoryShame, Rarity: RarityCommon},
	{Type: "SIEVE", Name: "Sieve", Description: "Concede 7+ goals in one match", Icon: "🕸️", Category: CategoryShame, Rarity: RarityUncommon},
	{Type: "BLANKED", Name: "Blanked", Description: "Lose without scoring", Icon: "🥶", Category: CategoryShame, Rarity: RarityCommon},
	{Type: "MANITA_VICTIM", Name: "Manita Victim", Description: "Lose a match 0-5", Icon: "🤚", Category: CategoryShame, Rarity: RarityRare},
	{Type: "DROUGHT", Name: "Drought", Description: "Fail to score in 5 consecutive matches", Icon: "🌵", Category: CategoryShame, Rarity: RarityUncommon},

	// Hall of shame: career lowlights.
	{Type: "PUNCHING_BAG", Name: "Punching Bag", Description: "Lose 10 matches", Icon: "🥊", Category: CategoryShame, Rarity: RarityCommon},
	{Type: "GLUTTON", Name: "Glutton for Punishment", Description: "Lose 25 matches", Icon: "😵", Category: CategoryShame, Rarity: RarityUncommon},
	{Type: "PROFESSIONAL_VICTIM", Name: "Professional Victim", Description: "Lose 50 matches", Icon: "⚰️", Category: CategoryShame, Rarity: RarityRare},
	{Type: "OPEN_GOAL", Name: "Open Goal", Description: "Concede 100 career goals", Icon: "🤕", Category: CategoryShame, Rarity: RarityUncommon},
	{Type: "REVOLVING_DOOR", Name: "Revolving Door", Description: "Concede 250 career goals", Icon: "🚑", Category: CategoryShame, Rarity: RarityRare},

	// Hall of shame: drama.
	{Type: "EXTRA_TIME_HEARTBREAK", Name: "Extra Time Heartbreak", Description: "Lose a match in extra time", Icon: "💔", Category: CategoryShame, Rarity: RarityUncommon},
	{Type: "SHOOTOUT_CHOKER", Name: "Shootout Choker", Description: "Lose a penalty shootout", Icon: "🧊", Category: CategoryShame, Rarity: RarityUncommon},
	{Type: "SERIAL_CHOKER", Name: "Serial Choker", Description: "Lose 3 penalty shootouts", Icon: "🎭", Category: CategoryShame, Rarity: RarityRare},

	// Hall of shame: relative strength.
	{Type: "GIANT_SLAIN", Name: "Giant Slain", Description: "Lose to a team rated 3+ below yours", Icon: "🪦", Category: CategoryShame, Rarity: RarityUncommon},
	{Type: "DOWNFALL", Name: "Downfall", Description: "Lose to a team rated 5+ below yours", Icon: "🧎", Category: CategoryShame, Rarity: RarityRare},
	{Type: "EMBARRASSMENT", Name: "Embarrassment", Description: "Lose to a team rated 7+ below yours", Icon: "🤡", Category: CategoryShame, Rarity: RarityEpic},
}

// defaultTeams is the built-in team catalog.
var defaultTeams = []Team{
	// La Liga.
	{ID: 1, Name: "Real Madrid", ShortName: "RM", League: "La Liga", Rating: 90, PrimaryColor: "#FFFFFF", SecondaryColor: "#FEBE10", Logo: "https://placehold.co/40x40?text=RM"},
	{ID: 2, Name: "Barcelona", ShortName: "BAR", League: "La Liga", Rating: 89, PrimaryColor: "#A50044", SecondaryColor: "#004D98", Logo: "https://placehold.co/40x40?text=BAR"},
	{ID: 3, Name: "Atletico Madrid", ShortName: "ATM", League: "La Liga", Rating: 85, PrimaryColor: "#CB3524", SecondaryColor: "#262E62", Logo: "https://placehold.co/40x40?text=ATM"},
	{ID: 4, Name: "Sevilla", ShortName: "SEV", League: "La Liga", Rating: 82, PrimaryColor: "#F43333", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=SEV"},

	// Premier League.
	{ID: 5, Name: "Manchester City", ShortName: "MCI", League: "Premier League", Rating: 91, PrimaryColor: "#6CABDD", SecondaryColor: "#1C2C5B", Logo: "https://placehold.co/40x40?text=MCI"},
	{ID: 6, Name: "Liverpool", ShortName: "LIV", League: "Premier League", Rating: 89, PrimaryColor: "#C8102E", SecondaryColor: "#00B2A9", Logo: "https://placehold.co/40x40?text=LIV"},
	{ID: 7, Name: "Arsenal", ShortName: "ARS", League: "Premier League", Rating: 87, PrimaryColor: "#EF0107", SecondaryColor: "#063672", Logo: "https://placehold.co/40x40?text=ARS"},
	{ID: 8, Name: "Chelsea", ShortName: "CHE", League: "Premier League", Rating: 86, PrimaryColor: "#034694", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=CHE"},
	{ID: 9, Name: "Manchester United", ShortName: "MUN", League: "Premier League", Rating: 85, PrimaryColor: "#DA291C", SecondaryColor: "#FBE122", Logo: "https://placehold.co/40x40?text=MUN"},
	{ID: 10, Name: "Tottenham", ShortName: "TOT", League: "Premier League", Rating: 84, PrimaryColor: "#FFFFFF", SecondaryColor: "#132257", Logo: "https://placehold.co/40x40?text=TOT"},
	{ID: 11, Name: "Newcastle", ShortName: "NEW", League: "Premier League", Rating: 82, PrimaryColor: "#241F20", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=NEW"},
	{ID: 12, Name: "Aston Villa", ShortName: "AVL", League: "Premier League", Rating: 81, PrimaryColor: "#670E36", SecondaryColor: "#95BFE5", Logo: "https://placehold.co/40x40?text=AVL"},

	// Bundesliga.
	{ID: 13, Name: "Bayern Munich", ShortName: "BAY", League: "Bundesliga", Rating: 90, PrimaryColor: "#DC052D", SecondaryColor: "#0066B2", Logo: "https://placehold.co/40x40?text=BAY"},
	{ID: 14, Name: "Borussia Dortmund", ShortName: "BVB", League: "Bundesliga", Rating: 86, PrimaryColor: "#FDE100", SecondaryColor: "#000000", Logo: "https://placehold.co/40x40?text=BVB"},
	{ID: 15, Name: "RB Leipzig", ShortName: "RBL", League: "Bundesliga", Rating: 84, PrimaryColor: "#DD0741", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=RBL"},
	{ID: 16, Name: "Bayer Leverkusen", ShortName: "LEV", League: "Bundesliga", Rating: 83, PrimaryColor: "#E32221", SecondaryColor: "#000000", Logo: "https://placehold.co/40x40?text=LEV"},

	// Serie A.
	{ID: 17, Name: "Inter Milan", ShortName: "INT", League: "Serie A", Rating: 87, PrimaryColor: "#0068A8", SecondaryColor: "#000000", Logo: "https://placehold.co/40x40?text=INT"},
	{ID: 18, Name: "AC Milan", ShortName: "ACM", League: "Serie A", Rating: 86, PrimaryColor: "#FB090B", SecondaryColor: "#000000", Logo: "https://placehold.co/40x40?text=ACM"},
	{ID: 19, Name: "Juventus", ShortName: "JUV", League: "Serie A", Rating: 85, PrimaryColor: "#FFFFFF", SecondaryColor: "#000000", Logo: "https://placehold.co/40x40?text=JUV"},
	{ID: 20, Name: "Napoli", ShortName: "NAP", League: "Serie A", Rating: 85, PrimaryColor: "#12A0D7", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=NAP"},
	{ID: 21, Name: "Roma", ShortName: "ROM", League: "Serie A", Rating: 83, PrimaryColor: "#8E1F2F", SecondaryColor: "#F0BC42", Logo: "https://placehold.co/40x40?text=ROM"},
	{ID: 22, Name: "Lazio", ShortName: "LAZ", League: "Serie A", Rating: 82, PrimaryColor: "#87D8F7", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=LAZ"},

	// Ligue 1.
	{ID: 23, Name: "Paris Saint-Germain", ShortName: "PSG", League: "Ligue 1", Rating: 88, PrimaryColor: "#004170", SecondaryColor: "#DA291C", Logo: "https://placehold.co/40x40?text=PSG"},
	{ID: 24, Name: "Marseille", ShortName: "OM", League: "Ligue 1", Rating: 82, PrimaryColor: "#2FAEE0", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=OM"},
	{ID: 25, Name: "Monaco", ShortName: "MON", League: "Ligue 1", Rating: 81, PrimaryColor: "#E51B22", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=MON"},
	{ID: 26, Name: "Lyon", ShortName: "LYO", League: "Ligue 1", Rating: 80, PrimaryColor: "#DA001A", SecondaryColor: "#1A2D69", Logo: "https://placehold.co/40x40?text=LYO"},

	// Primeira Liga.
	{ID: 27, Name: "Benfica", ShortName: "BEN", League: "Primeira Liga", Rating: 82, PrimaryColor: "#E83030", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=BEN"},
	{ID: 28, Name: "Porto", ShortName: "POR", League: "Primeira Liga", Rating: 82, PrimaryColor: "#00428C", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=POR"},
	{ID: 29, Name: "Sporting CP", ShortName: "SCP", League: "Primeira Liga", Rating: 81, PrimaryColor: "#008057", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=SCP"},

	// Eredivisie.
	{ID: 30, Name: "Ajax", ShortName: "AJA", League: "Eredivisie", Rating: 81, PrimaryColor: "#D2122E", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=AJA"},
	{ID: 31, Name: "PSV Eindhoven", ShortName: "PSV", League: "Eredivisie", Rating: 80, PrimaryColor: "#ED1C24", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=PSV"},

	// Scottish Premiership.
	{ID: 32, Name: "Celtic", ShortName: "CEL", League: "Scottish Premiership", Rating: 78, PrimaryColor: "#018749", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=CEL"},
	{ID: 33, Name: "Rangers", ShortName: "RAN", League: "Scottish Premiership", Rating: 77, PrimaryColor: "#1B458F", SecondaryColor: "#FFFFFF", Logo: "https://placehold.co/40x40?text=RAN"},

	// Super Lig.
	{ID: 34, Name: "Galatasaray", ShortName: "GAL", League: "Super Lig", Rating: 79, PrimaryColor: "#FDB912", SecondaryColor: "#A90432", Logo: "https://placehold.co/40x40?text=GAL"},
	{ID: 35, Name: "Fenerbahce", ShortName: "FEN", League: "Super Lig", Rating: 78, PrimaryColor: "#FFED00", SecondaryColor: "#00235D", Logo: "https://placehold.co/40x40?text=FEN"},
}
