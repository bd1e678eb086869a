package testutil

// WithStandardVenue adds the standard test venue.
//
// Catalog (id: name, price):
//
//	1: Água 2.50   2: Toalha 12.00   3: Cabo XLR 39.90
//
// Stock: Água 24, Toalha 6. Rooms: 1 Camarim A (2 Toalha) linked to artist
// 1 Marina; 2 Camarim B linked to artist 2 João. Requests: 1 pending for
// Camarim A (6 Água), 2 fulfilled for Camarim B (1 Toalha). Shopping list 1
// "Show de sexta" with 2 Cabo XLR.
func (b *Builder) WithStandardVenue() *Builder {
	return b.
		WithItem("Água", Price(2.5)).
		WithItem("Toalha", Price(12)).
		WithItem("Cabo XLR", Price(39.9)).
		WithStock("Água", 24).
		WithStock("Toalha", 6).
		WithRoom("Camarim A", RoomItems(Line("Toalha", 2))).
		WithRoom("Camarim B").
		WithArtist("Marina", InRoom("Camarim A")).
		WithArtist("João", InRoom("Camarim B")).
		WithRequest("Camarim A", "Marina", Items(Line("Água", 6))).
		WithRequest("Camarim B", "João", Items(Line("Toalha", 1)), Fulfilled()).
		WithShoppingList("Show de sexta", ListItems(Line("Cabo XLR", 2)))
}

// WithShortStock adds a venue whose single pending request cannot be
// dispatched: Camarim A asks for 5 Gelo while stock holds 2.
func (b *Builder) WithShortStock() *Builder {
	return b.
		WithItem("Gelo", Price(8)).
		WithStock("Gelo", 2).
		WithRoom("Camarim A").
		WithRequest("Camarim A", "Marina", Items(Line("Gelo", 5)))
}
