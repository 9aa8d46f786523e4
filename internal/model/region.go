package model

import "slices"

// Regions are the metropolitan areas a profile or academy can be filed under.
var Regions = []string{
	"서울", "부산", "대구", "인천", "광주", "대전", "울산", "세종",
	"경기", "강원", "충북", "충남", "전북", "전남", "경북", "경남", "제주",
}

func IsValidRegion(region string) bool {
	return slices.Contains(Regions, region)
}
