package dialogue

// SeedRoutes returns the built-in route graphs. Authored JSON documents
// loaded from a content directory override these per route.
func SeedRoutes() map[RouteType]*Graph {
	return map[RouteType]*Graph{
		RouteIncel:        NewGraph("The Forum Poster", RouteIncel, seedIncelNodes()),
		RouteFemcel:       NewGraph("The Disappointed Romantic", RouteFemcel, seedFemcelNodes()),
		RoutePerformative: NewGraph("The Audience Of One", RoutePerformative, seedPerformativeNodes()),
		RouteBop:          NewGraph("The Main Character", RouteBop, seedBopNodes()),
		RouteThemcel:      NewGraph("The Integration Interview", RouteThemcel, seedThemcelNodes()),
	}
}
