package service

import "math"

const (
	earthRadiusKm = 6371.0
	// скорость перемещения пешком внутри здания
	indoorSpeedKmh = 5.0
)

// HaversineKm возвращает расстояние по большому кругу между двумя точками в километрах
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lng2 - lng1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// TravelMinutes переводит расстояние в минуты пути, округляя до целой минуты
func TravelMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / indoorSpeedKmh * 60))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
