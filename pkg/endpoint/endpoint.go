/*
endpoint builds the URLs of API endpoints from an API version and an
endpoint path, for example ("v1", "models") becomes
https://api.openai.com/v1/models

URLs are cached for the lifetime of the process, keyed by the exact
version and endpoint strings.
*/
package endpoint

import (
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	// Packages
	openai "github.com/mutablelogic/go-openai"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Cache resolves endpoints against a base URL and memoizes the results.
// It is safe for concurrent use.
type Cache struct {
	base *url.URL
	urls sync.Map // key -> *url.URL
	hits atomic.Uint64
}

type key struct {
	version, endpoint string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultBase is the base URL of the OpenAI API
	DefaultBase = "https://api.openai.com/"

	// DefaultVersion is the API version used when none is set
	DefaultVersion = "v1"
)

var (
	defaultCache = mustNew(DefaultBase)
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a cache for endpoints relative to base, which must be an
// absolute http or https URL
func New(base string) (*Cache, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, openai.ErrURL.Wrap(err)
	} else if u.Scheme != "http" && u.Scheme != "https" {
		return nil, openai.ErrBadParameter.Withf("base url: %q", base)
	} else if u.Host == "" {
		return nil, openai.ErrBadParameter.Withf("base url: %q", base)
	}

	// The base path is treated as a directory, so that endpoints are
	// resolved beneath it
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""

	return &Cache{base: u}, nil
}

func mustNew(base string) *Cache {
	cache, err := New(base)
	if err != nil {
		panic(err)
	}
	return cache
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// URL returns the URL for an endpoint of the OpenAI API, for example
// URL("v1", "engines") returns https://api.openai.com/v1/engines
func URL(version, endpoint string) (*url.URL, error) {
	return defaultCache.URL(version, endpoint)
}

// Base returns the base URL
func (c *Cache) Base() *url.URL {
	return clone(c.base)
}

// CheckVersion returns an error unless version starts with "v" and is a
// single path segment
func CheckVersion(version string) error {
	if !strings.HasPrefix(version, "v") || strings.Contains(version, "/") {
		return openai.ErrBadParameter.Withf("version: %q", version)
	}
	return nil
}

// URL returns the URL for an endpoint with the given version. The version
// must start with "v". The returned URL can be modified by the caller.
func (c *Cache) URL(version, endpoint string) (*url.URL, error) {
	k := key{version, endpoint}
	if u, exists := c.urls.Load(k); exists {
		c.hits.Add(1)
		return clone(u.(*url.URL)), nil
	}

	// Resolve the URL
	u, err := c.resolve(version, endpoint)
	if err != nil {
		return nil, err
	}

	// Concurrent callers may resolve the same key, in which case the
	// first stored value is kept
	actual, _ := c.urls.LoadOrStore(k, u)
	return clone(actual.(*url.URL)), nil
}

// Hits returns the number of calls to URL which were served from the cache
func (c *Cache) Hits() uint64 {
	return c.hits.Load()
}

// Len returns the number of cached URLs
func (c *Cache) Len() int {
	n := 0
	c.urls.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Cache) resolve(version, endpoint string) (*url.URL, error) {
	if err := CheckVersion(version); err != nil {
		return nil, err
	}

	// Join the version and endpoint with a single separator
	ref, err := url.Parse(version + "/" + strings.TrimLeft(endpoint, "/"))
	if err != nil {
		return nil, openai.ErrURL.Wrap(err)
	} else if ref.IsAbs() || ref.Host != "" {
		return nil, openai.ErrURL.Withf("endpoint: %q", endpoint)
	}

	return c.base.ResolveReference(ref), nil
}

func clone(u *url.URL) *url.URL {
	result := *u
	return &result
}
