package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ClassListKey returns the cache key for the full class list.
func (r *CacheKeyStruct) ClassListKey() string {
	return "class:list"
}

// ClassListByDayKey returns the cache key for the class list filtered by day.
func (r *CacheKeyStruct) ClassListByDayKey(day string) string {
	return fmt.Sprintf("class:list:day:%s", day)
}

var CacheKey = NewCacheKeyStruct()
