package geo

// NewCityGraph builds the static Delhi-NCR landmark graph used for demo
// routing. Roughly a dozen nodes with approximate road distances in km.
func NewCityGraph() *Graph {
	g := NewGraph()

	g.AddNode("CP", 28.6304, 77.2177)  // Connaught Place
	g.AddNode("IG", 28.6129, 77.2295)  // India Gate
	g.AddNode("AK", 28.6127, 77.2773)  // Akshardham
	g.AddNode("LN", 28.6304, 77.2772)  // Laxmi Nagar
	g.AddNode("MV", 28.6000, 77.2900)  // Mayur Vihar
	g.AddNode("SKK", 28.5880, 77.2580) // Sarai Kale Khan
	g.AddNode("ASH", 28.5700, 77.2550) // Ashram
	g.AddNode("NP", 28.5492, 77.2526)  // Nehru Place
	g.AddNode("N15", 28.5898, 77.3101) // Noida Sec 15
	g.AddNode("N18", 28.5700, 77.3200) // Noida Sec 18
	g.AddNode("GP", 28.5670, 77.3300)  // Golf Course
	g.AddNode("S62", 28.6200, 77.3700) // Sec 62

	g.Connect("CP", "IG", 2.5)
	g.Connect("IG", "SKK", 4.0)
	g.Connect("SKK", "ASH", 2.5)
	g.Connect("ASH", "NP", 3.0)
	g.Connect("SKK", "AK", 3.0)
	g.Connect("AK", "MV", 2.0)
	g.Connect("MV", "N15", 3.0)
	g.Connect("N15", "N18", 2.5)
	g.Connect("N18", "GP", 1.5)

	// Alternate route out of Connaught Place
	g.Connect("CP", "LN", 6.0)
	g.Connect("LN", "AK", 3.0)

	return g
}
