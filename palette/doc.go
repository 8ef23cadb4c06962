// Package palette quantizes a magnitude matrix into a discrete colour
// palette and encodes the resulting raster losslessly.
package palette
