// Package geo provides validated coordinates, distances and the usual
// geodesic calculations on WGS 84.
//
// What:
//
//   - LatLong: a coordinate pair; latitude in [-90,90], longitude in
//     [-180,180]. Construction validates, so a LatLong obtained from
//     NewLatLong or ParseLatLong is always in range.
//   - Distance: a non-negative length with unit conversions. Miles are
//     defined as Kilometres * 0.621371192.
//   - Haversine: great-circle distance on a sphere of mean Earth radius.
//     Fast; error up to about 0.5%.
//   - Vincenty: inverse solution on the WGS 84 ellipsoid, accurate to
//     millimetres; iterative and may fail to converge for nearly
//     antipodal points (ErrNoConvergence).
//   - Bearing, Midpoint, Destination, BoundingBox.
//   - Route: orders stops into a short open or closed tour
//     (nearest-neighbour seed, then 2-opt).
//
// Complexity: all operations are O(1) except Route; Vincenty runs at most
// MaxIterations iterations. Route builds an n×n distance table and each
// 2-opt pass is O(n²).
package geo
