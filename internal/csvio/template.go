package csvio

import "strings"

// Template returns the downloadable starter file for an import kind.
func Template(kind string) (filename, content string, ok bool) {
	var lines []string
	switch kind {
	case "users":
		lines = []string{"Jan Janssen", "Marie Pietersen", "Piet de Vries", "Anna van der Berg", "Nieuwe Gebruiker"}
		filename = "gebruikers-template.csv"
	case "products":
		lines = []string{
			"Laptop Dell XPS,DELL-XPS-001",
			"Monitor Samsung 24,SAM-MON-002",
			"Muis Logitech,LOG-MOU-003",
			"Toetsenbord Mechanical,MECH-KEY-004",
			"Nieuw Product,NEW-PROD-005",
		}
		filename = "producten-template.csv"
	case "locations":
		lines = []string{"Kantoor 1.1", "Kantoor 1.2", "Vergaderzaal A", "Warehouse", "Thuis", "Nieuwe Locatie"}
		filename = "locaties-template.csv"
	case "purposes":
		lines = []string{"Presentatie", "Thuiswerken", "Reparatie", "Training", "Demonstratie", "Nieuw Doel"}
		filename = "doelen-template.csv"
	default:
		return "", "", false
	}
	return filename, strings.Join(lines, "\n"), true
}
