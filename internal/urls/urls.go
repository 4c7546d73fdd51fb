// Package urls reverses named routes into paths.
package urls

import (
	"fmt"
	"net/url"
	"regexp"
	"sync"

	"github.com/nikolayk812/storefront/internal/domain"
)

const ProductDetail = "product_detail"

var placeholder = regexp.MustCompile(`\{([a-z_]+)\}`)

// Registry maps route names to path patterns such as
// "/products/{ct_model}/{slug}/".
type Registry struct {
	mu     sync.RWMutex
	routes map[string]string
}

func NewRegistry() *Registry {
	return &Registry{routes: make(map[string]string)}
}

// DefaultRegistry knows the storefront's product detail route.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(ProductDetail, "/products/{ct_model}/{slug}/")
	return r
}

func (r *Registry) Register(name, pattern string) error {
	if name == "" {
		return fmt.Errorf("route name is empty")
	}
	if pattern == "" {
		return fmt.Errorf("route[%s] pattern is empty", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.routes[name]; ok {
		return fmt.Errorf("route[%s] is already registered", name)
	}
	r.routes[name] = pattern

	return nil
}

func (r *Registry) MustRegister(name, pattern string) {
	if err := r.Register(name, pattern); err != nil {
		panic(err)
	}
}

// Reverse fills the placeholders of route name with path-escaped params.
// Every placeholder needs a non-empty param.
func (r *Registry) Reverse(name string, params map[string]string) (string, error) {
	r.mu.RLock()
	pattern, ok := r.routes[name]
	r.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("route[%s] is not registered", name)
	}

	var missing string
	path := placeholder.ReplaceAllStringFunc(pattern, func(m string) string {
		key := m[1 : len(m)-1]
		v := params[key]
		if v == "" && missing == "" {
			missing = key
		}
		return url.PathEscape(v)
	})
	if missing != "" {
		return "", fmt.Errorf("route[%s] param[%s] is missing", name, missing)
	}

	return path, nil
}

// ProductURL reverses viewName with the product kind as ct_model and its slug.
func ProductURL(r *Registry, viewName string, p domain.Product) (string, error) {
	return r.Reverse(viewName, map[string]string{
		"ct_model": p.Kind().String(),
		"slug":     p.Base().Slug,
	})
}

// AbsoluteURL is the product detail path of p.
func AbsoluteURL(r *Registry, p domain.Product) (string, error) {
	return ProductURL(r, ProductDetail, p)
}
