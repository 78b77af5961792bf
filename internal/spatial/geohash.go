package spatial

import (
	"strings"
)

const geohashAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// HotspotPrecision groups businesses into cells of roughly 4.9km x 4.9km
const HotspotPrecision = 5

// EncodeGeohash returns the geohash of p with precision characters (1-12).
// Bits alternate longitude then latitude, five bits per character.
func EncodeGeohash(p Point, precision int) string {
	precision = min(max(precision, 1), 12)

	lat := [2]float64{-90, 90}
	lon := [2]float64{-180, 180}

	var sb strings.Builder
	sb.Grow(precision)
	even := true
	for sb.Len() < precision {
		ch := 0
		for b := 0; b < 5; b++ {
			ch <<= 1
			if even {
				ch |= split(&lon, p.Lon)
			} else {
				ch |= split(&lat, p.Lat)
			}
			even = !even
		}
		sb.WriteByte(geohashAlphabet[ch])
	}
	return sb.String()
}

// split halves r toward v and returns the chosen half as a bit
func split(r *[2]float64, v float64) int {
	mid := (r[0] + r[1]) / 2
	if v > mid {
		r[0] = mid
		return 1
	}
	r[1] = mid
	return 0
}

// GeohashCell returns the rectangle a geohash covers. Invalid characters
// end decoding early, leaving the coarser cell.
func GeohashCell(hash string) Bounds {
	lat := [2]float64{-90, 90}
	lon := [2]float64{-180, 180}

	even := true
	for i := 0; i < len(hash); i++ {
		idx := strings.IndexByte(geohashAlphabet, hash[i])
		if idx < 0 {
			break
		}
		for mask := 16; mask > 0; mask >>= 1 {
			r := &lat
			if even {
				r = &lon
			}
			mid := (r[0] + r[1]) / 2
			if idx&mask != 0 {
				r[0] = mid
			} else {
				r[1] = mid
			}
			even = !even
		}
	}
	return Bounds{North: lat[1], South: lat[0], East: lon[1], West: lon[0]}
}
