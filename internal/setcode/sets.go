package setcode

type set struct {
	code     string
	name     string
	released string
}

// sets lists expansions in release order. The catalog is not exhaustive; it
// covers the sets that actually show up in collection exports, and unknown
// codes simply pass through to the lookup service untouched.
var sets = []set{
	{"lea", "Limited Edition Alpha", "1993-08-05"},
	{"leb", "Limited Edition Beta", "1993-10-04"},
	{"2ed", "Unlimited Edition", "1993-12-01"},
	{"arn", "Arabian Nights", "1993-12-17"},
	{"atq", "Antiquities", "1994-03-04"},
	{"3ed", "Revised Edition", "1994-04-01"},
	{"leg", "Legends", "1994-06-10"},
	{"drk", "The Dark", "1994-08-01"},
	{"fem", "Fallen Empires", "1994-11-01"},
	{"4ed", "Fourth Edition", "1995-04-01"},
	{"ice", "Ice Age", "1995-06-03"},
	{"hml", "Homelands", "1995-10-01"},
	{"all", "Alliances", "1996-06-10"},
	{"mir", "Mirage", "1996-10-08"},
	{"vis", "Visions", "1997-02-03"},
	{"5ed", "Fifth Edition", "1997-03-24"},
	{"wth", "Weatherlight", "1997-06-09"},
	{"tmp", "Tempest", "1997-10-14"},
	{"sth", "Stronghold", "1998-03-02"},
	{"exo", "Exodus", "1998-06-15"},
	{"usg", "Urza's Saga", "1998-10-12"},
	{"ulg", "Urza's Legacy", "1999-02-15"},
	{"uds", "Urza's Destiny", "1999-06-07"},
	{"mmq", "Mercadian Masques", "1999-10-04"},
	{"nem", "Nemesis", "2000-02-14"},
	{"pcy", "Prophecy", "2000-06-05"},
	{"inv", "Invasion", "2000-10-02"},
	{"pls", "Planeshift", "2001-02-05"},
	{"7ed", "Seventh Edition", "2001-04-11"},
	{"apc", "Apocalypse", "2001-06-04"},
	{"ody", "Odyssey", "2001-10-01"},
	{"tor", "Torment", "2002-02-04"},
	{"jud", "Judgment", "2002-05-27"},
	{"ons", "Onslaught", "2002-10-07"},
	{"lgn", "Legions", "2003-02-03"},
	{"scg", "Scourge", "2003-05-26"},
	{"8ed", "Eighth Edition", "2003-07-28"},
	{"mrd", "Mirrodin", "2003-10-02"},
	{"dst", "Darksteel", "2004-02-06"},
	{"5dn", "Fifth Dawn", "2004-06-04"},
	{"chk", "Champions of Kamigawa", "2004-10-01"},
	{"bok", "Betrayers of Kamigawa", "2005-02-04"},
	{"sok", "Saviors of Kamigawa", "2005-06-03"},
	{"9ed", "Ninth Edition", "2005-07-29"},
	{"rav", "Ravnica: City of Guilds", "2005-10-07"},
	{"gpt", "Guildpact", "2006-02-03"},
	{"dis", "Dissension", "2006-05-05"},
	{"csp", "Coldsnap", "2006-07-21"},
	{"tsp", "Time Spiral", "2006-10-06"},
	{"plc", "Planar Chaos", "2007-02-02"},
	{"fut", "Future Sight", "2007-05-04"},
	{"10e", "Tenth Edition", "2007-07-13"},
	{"lrw", "Lorwyn", "2007-10-12"},
	{"mor", "Morningtide", "2008-02-01"},
	{"shm", "Shadowmoor", "2008-05-02"},
	{"eve", "Eventide", "2008-07-25"},
	{"ala", "Shards of Alara", "2008-10-03"},
	{"con", "Conflux", "2009-02-06"},
	{"arb", "Alara Reborn", "2009-04-30"},
	{"m10", "Magic 2010", "2009-07-17"},
	{"zen", "Zendikar", "2009-10-02"},
	{"wwk", "Worldwake", "2010-02-05"},
	{"roe", "Rise of the Eldrazi", "2010-04-23"},
	{"m11", "Magic 2011", "2010-07-16"},
	{"som", "Scars of Mirrodin", "2010-10-01"},
	{"mbs", "Mirrodin Besieged", "2011-02-04"},
	{"nph", "New Phyrexia", "2011-05-13"},
	{"m12", "Magic 2012", "2011-07-15"},
	{"isd", "Innistrad", "2011-09-30"},
	{"dka", "Dark Ascension", "2012-02-03"},
	{"avr", "Avacyn Restored", "2012-05-04"},
	{"m13", "Magic 2013", "2012-07-13"},
	{"rtr", "Return to Ravnica", "2012-10-05"},
	{"gtc", "Gatecrash", "2013-02-01"},
	{"dgm", "Dragon's Maze", "2013-05-03"},
	{"m14", "Magic 2014", "2013-07-19"},
	{"ths", "Theros", "2013-09-27"},
	{"bng", "Born of the Gods", "2014-02-07"},
	{"jou", "Journey into Nyx", "2014-05-02"},
	{"m15", "Magic 2015", "2014-07-18"},
	{"ktk", "Khans of Tarkir", "2014-09-26"},
	{"frf", "Fate Reforged", "2015-01-23"},
	{"dtk", "Dragons of Tarkir", "2015-03-27"},
	{"ori", "Magic Origins", "2015-07-17"},
	{"bfz", "Battle for Zendikar", "2015-10-02"},
	{"ogw", "Oath of the Gatewatch", "2016-01-22"},
	{"soi", "Shadows over Innistrad", "2016-04-08"},
	{"emn", "Eldritch Moon", "2016-07-22"},
	{"kld", "Kaladesh", "2016-09-30"},
	{"aer", "Aether Revolt", "2017-01-20"},
	{"akh", "Amonkhet", "2017-04-28"},
	{"hou", "Hour of Devastation", "2017-07-14"},
	{"xln", "Ixalan", "2017-09-29"},
	{"rix", "Rivals of Ixalan", "2018-01-19"},
	{"dom", "Dominaria", "2018-04-27"},
	{"m19", "Core Set 2019", "2018-07-13"},
	{"grn", "Guilds of Ravnica", "2018-10-05"},
	{"rna", "Ravnica Allegiance", "2019-01-25"},
	{"war", "War of the Spark", "2019-05-03"},
	{"mh1", "Modern Horizons", "2019-06-14"},
	{"m20", "Core Set 2020", "2019-07-12"},
	{"eld", "Throne of Eldraine", "2019-10-04"},
	{"sld", "Secret Lair Drop", "2019-12-02"},
	{"thb", "Theros Beyond Death", "2020-01-24"},
	{"iko", "Ikoria: Lair of Behemoths", "2020-04-24"},
	{"m21", "Core Set 2021", "2020-07-03"},
	{"2xm", "Double Masters", "2020-08-07"},
	{"znr", "Zendikar Rising", "2020-09-25"},
	{"plst", "The List", "2020-09-26"},
	{"cmr", "Commander Legends", "2020-11-20"},
	{"khm", "Kaldheim", "2021-02-05"},
	{"tsr", "Time Spiral Remastered", "2021-03-19"},
	{"stx", "Strixhaven: School of Mages", "2021-04-23"},
	{"mh2", "Modern Horizons 2", "2021-06-18"},
	{"afr", "Adventures in the Forgotten Realms", "2021-07-23"},
	{"mid", "Innistrad: Midnight Hunt", "2021-09-24"},
	{"vow", "Innistrad: Crimson Vow", "2021-11-19"},
	{"neo", "Kamigawa: Neon Dynasty", "2022-02-18"},
	{"snc", "Streets of New Capenna", "2022-04-29"},
	{"clb", "Commander Legends: Battle for Baldur's Gate", "2022-06-10"},
	{"2x2", "Double Masters 2022", "2022-07-08"},
	{"dmu", "Dominaria United", "2022-09-09"},
	{"unf", "Unfinity", "2022-10-07"},
	{"bro", "The Brothers' War", "2022-11-18"},
	{"dmr", "Dominaria Remastered", "2023-01-13"},
	{"one", "Phyrexia: All Will Be One", "2023-02-10"},
	{"mom", "March of the Machine", "2023-04-21"},
	{"mat", "March of the Machine: The Aftermath", "2023-05-12"},
	{"ltr", "The Lord of the Rings: Tales of Middle-earth", "2023-06-23"},
	{"cmm", "Commander Masters", "2023-08-04"},
	{"woe", "Wilds of Eldraine", "2023-09-08"},
	{"lci", "The Lost Caverns of Ixalan", "2023-11-17"},
	{"rvr", "Ravnica Remastered", "2024-01-12"},
	{"mkm", "Murders at Karlov Manor", "2024-02-09"},
	{"otj", "Outlaws of Thunder Junction", "2024-04-19"},
	{"mh3", "Modern Horizons 3", "2024-06-14"},
	{"blb", "Bloomburrow", "2024-08-02"},
	{"dsk", "Duskmourn: House of Horror", "2024-09-27"},
	{"fdn", "Foundations", "2024-11-15"},
}
