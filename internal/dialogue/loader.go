package dialogue

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// routeDoc is the authored per-route document: route info plus an ordered
// node list. The node/choice shapes reuse the runtime types' JSON tags.
type routeDoc struct {
	RouteName string  `json:"routeName"`
	RouteType string  `json:"routeType"`
	Nodes     []*Node `json:"nodes"`
}

// ParseRouteType maps an authored route type string to a RouteType.
// Unknown values map to RouteNone.
func ParseRouteType(s string) RouteType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "incel":
		return RouteIncel
	case "femcel":
		return RouteFemcel
	case "performative":
		return RoutePerformative
	case "bop":
		return RouteBop
	case "themcel":
		return RouteThemcel
	default:
		return RouteNone
	}
}

// ParseRoute decodes one authored route document into a Graph. Unlike the
// in-memory Load, repeated node ids here are a content error: silently
// keeping the last copy hides authoring mistakes until a playthrough hits
// the shadowed node.
func ParseRoute(data []byte) (*Graph, error) {
	var doc routeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("dialogue: parse route: %w", err)
	}

	seen := make(map[string]bool, len(doc.Nodes))
	for _, node := range doc.Nodes {
		if node.ID == "" {
			return nil, fmt.Errorf("dialogue: route %q has a node without an id", doc.RouteName)
		}
		if seen[node.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNodeID, node.ID)
		}
		seen[node.ID] = true
	}

	return NewGraph(doc.RouteName, ParseRouteType(doc.RouteType), doc.Nodes), nil
}

// LoadRouteFile reads and parses one authored route document.
func LoadRouteFile(path string) (*Graph, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("dialogue: read route %q: %w", path, err)
	}
	graph, err := ParseRoute(data)
	if err != nil {
		return nil, fmt.Errorf("dialogue: route %q: %w", path, err)
	}
	return graph, nil
}

// LoadRouteDir loads every *.json route document in dir, keyed by route
// type. Files declaring an unknown route type are rejected rather than
// silently dropped.
func LoadRouteDir(dir string) (map[RouteType]*Graph, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("dialogue: scan route dir %q: %w", dir, err)
	}

	routes := make(map[RouteType]*Graph, len(paths))
	for _, path := range paths {
		graph, err := LoadRouteFile(path)
		if err != nil {
			return nil, err
		}
		if graph.RouteType == RouteNone {
			return nil, fmt.Errorf("dialogue: route %q: unknown route type", path)
		}
		routes[graph.RouteType] = graph
	}
	return routes, nil
}
