// Package mapdata acquires road networks for the planner.
//
// Two sources are supported:
//
//   - HCL network files, loaded with LoadHCL. A file declares the area name,
//     its intersections and its roads:
//
//	place = "Kraków, Polska"
//
//	node "1" {
//	  lat = 50.06798
//	  lon = 19.91234
//	}
//
//	road {
//	  from   = 1
//	  to     = 2
//	  length = 1.2 * km
//	  name   = "Aleja Mickiewicza"
//	  oneway = true
//	}
//
//     Lengths are metres; the variables m, km and mi and the functions min
//     and max are available in expressions. A road may list several names
//     with names = [...]. Directories are searched recursively for .hcl files.
//
//   - A Bolt graph database (Neo4j or any openCypher endpoint speaking Bolt),
//     read and written through Store. Intersections are
//     (:Intersection {id, place, lat, lon}) nodes joined by
//     [:ROAD {length, names, oneway}] relationships.
package mapdata
