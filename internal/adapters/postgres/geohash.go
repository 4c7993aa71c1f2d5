package postgres

import "github.com/mmcloughlin/geohash"

// Точности 5 (~5 км) хватает, чтобы считать объекты "соседними" в рамках города.
const geohashPrecision = 5

// encodeGeohash вычисляет префикс геохэша по координатам объекта.
// Нулевые координаты означают, что геокодирование не выполнялось.
func encodeGeohash(lat, lon float64) string {
	if lat == 0 && lon == 0 {
		return ""
	}
	return geohash.EncodeWithPrecision(lat, lon, geohashPrecision)
}
