package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

const (
	cacheKeyPrefix = "companies:"
	cacheLockPart  = "lock:"

	// CatalogCachePattern matches every key written by the catalog.
	CatalogCachePattern = cacheKeyPrefix + "*"
)

// Cache operations and how long their results stay fresh.
const (
	opList       = "list"
	opByID       = "byId"
	opCategory   = "category"
	opSearch     = "search"
	opCompare    = "compare"
	opStats      = "stats"
	opCategories = "categories"
	opFilter     = "filter"
	opWithSkills = "with-skills"
)

var cacheTTLs = map[string]time.Duration{
	opList:       5 * time.Minute,
	opByID:       10 * time.Minute,
	opCategory:   5 * time.Minute,
	opSearch:     2 * time.Minute,
	opCompare:    5 * time.Minute,
	opStats:      10 * time.Minute,
	opCategories: 15 * time.Minute,
	opFilter:     5 * time.Minute,
	opWithSkills: 10 * time.Minute,
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// CatalogCacheKey hashes params into "companies:<op>:<sha256>". Params
// should already be normalized.
func CatalogCacheKey(op string, params any) string {
	b, _ := json.Marshal(params)
	sum := sha256.Sum256(b)
	return cacheKeyPrefix + op + ":" + hex.EncodeToString(sum[:])
}

func catalogLockKey(key string) string {
	return cacheKeyPrefix + cacheLockPart + strings.TrimPrefix(key, cacheKeyPrefix)
}
