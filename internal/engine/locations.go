package engine

// Location is one entry in the fixed catalog: a place name plus the personas
// a non-spy player can be dealt there.
type Location struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// Locations is the standard deck. Every entry has at least one role.
var Locations = []Location{
	{Name: "Airplane", Roles: []string{"First Class Passenger", "Air Marshal", "Mechanic", "Economy Class Passenger", "Stewardess", "Co-Pilot", "Captain"}},
	{Name: "Bank", Roles: []string{"Armored Car Driver", "Manager", "Consultant", "Customer", "Robber", "Security Guard", "Teller"}},
	{Name: "Beach", Roles: []string{"Beach Waitress", "Kite Surfer", "Lifeguard", "Thief", "Beach Photographer", "Ice Cream Truck Driver", "Beach Goer"}},
	{Name: "Casino", Roles: []string{"Bartender", "Head Security Guard", "Bouncer", "Manager", "Hustler", "Dealer", "Gambler"}},
	{Name: "Cathedral", Roles: []string{"Priest", "Beggar", "Sinner", "Parishioner", "Tourist", "Sponsor", "Choir Singer"}},
	{Name: "Circus Tent", Roles: []string{"Acrobat", "Animal Trainer", "Magician", "Visitor", "Fire Eater", "Clown", "Juggler"}},
	{Name: "Corporate Party", Roles: []string{"Entertainer", "Manager", "Unwelcome Guest", "Owner", "Secretary", "Accountant", "Delivery Boy"}},
	{Name: "Crusader Army", Roles: []string{"Monk", "Imprisoned Arab", "Servant", "Bishop", "Squire", "Archer", "Knight"}},
	{Name: "Day Spa", Roles: []string{"Customer", "Stylist", "Masseuse", "Manicurist", "Makeup Artist", "Dermatologist", "Beautician"}},
	{Name: "Embassy", Roles: []string{"Security Guard", "Secretary", "Ambassador", "Government Official", "Tourist", "Refugee", "Diplomat"}},
	{Name: "Hospital", Roles: []string{"Nurse", "Doctor", "Anesthesiologist", "Intern", "Patient", "Therapist", "Surgeon"}},
	{Name: "Hotel", Roles: []string{"Doorman", "Security Guard", "Manager", "Housekeeper", "Customer", "Bartender", "Bellman"}},
	{Name: "Military Base", Roles: []string{"Deserter", "Colonel", "Medic", "Soldier", "Sniper", "Officer", "Tank Engineer"}},
	{Name: "Movie Studio", Roles: []string{"Stuntman", "Sound Engineer", "Cameraman", "Director", "Costume Artist", "Actor", "Producer"}},
	{Name: "Ocean Liner", Roles: []string{"Rich Passenger", "Cook", "Captain", "Bartender", "Musician", "Waiter", "Mechanic"}},
	{Name: "Passenger Train", Roles: []string{"Mechanic", "Border Patrol", "Train Attendant", "Passenger", "Restaurant Chef", "Engineer", "Stoker"}},
	{Name: "Pirate Ship", Roles: []string{"Cook", "Sailor", "Slave", "Cannoneer", "Bound Prisoner", "Cabin Boy", "Brave Captain"}},
	{Name: "Polar Station", Roles: []string{"Medic", "Geologist", "Expedition Leader", "Biologist", "Radioman", "Hydrologist", "Meteorologist"}},
	{Name: "Police Station", Roles: []string{"Detective", "Lawyer", "Journalist", "Criminalist", "Archivist", "Patrol Officer", "Criminal"}},
	{Name: "Restaurant", Roles: []string{"Musician", "Customer", "Bouncer", "Hostess", "Head Chef", "Food Critic", "Waiter"}},
	{Name: "School", Roles: []string{"Gym Teacher", "Student", "Principal", "Security Guard", "Janitor", "Lunch Lady", "Maintenance Man"}},
	{Name: "Service Station", Roles: []string{"Manager", "Tire Specialist", "Biker", "Car Owner", "Car Wash Operator", "Electrician", "Auto Mechanic"}},
	{Name: "Space Station", Roles: []string{"Engineer", "Alien", "Space Tourist", "Pilot", "Commander", "Scientist", "Doctor"}},
	{Name: "Submarine", Roles: []string{"Cook", "Commander", "Sonar Technician", "Electronics Technician", "Sailor", "Radioman", "Navigator"}},
	{Name: "Supermarket", Roles: []string{"Customer", "Cashier", "Butcher", "Janitor", "Security Guard", "Food Sample Demonstrator", "Shelf Stocker"}},
	{Name: "Theater", Roles: []string{"Coat Check Lady", "Prompter", "Cashier", "Visitor", "Director", "Actor", "Crewman"}},
	{Name: "University", Roles: []string{"Graduate Student", "Professor", "Dean", "Psychologist", "Maintenance Man", "Student", "Janitor"}},
}

// LocationNames returns the catalog's names, in deck order. Clients use this
// to render the spy's guessing grid.
func LocationNames() []string {
	names := make([]string, len(Locations))
	for i, loc := range Locations {
		names[i] = loc.Name
	}
	return names
}
