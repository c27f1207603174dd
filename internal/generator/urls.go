package generator

import (
	"fmt"
	neturl "net/url"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	defaultGroup     = "site"
	defaultPageRoute = "page"
	defaultPathParam = "path"

	// RouteSitemap and RouteRobots name the artifact routes every site
	// group carries.
	RouteSitemap = "sitemap"
	RouteRobots  = "robots"
)

// URLResolverOptions configures the go-urlkit backed resolver.
type URLResolverOptions struct {
	Manager   *urlkit.RouteManager
	Group     string
	PageRoute string
	PathParam string
}

// URLResolver turns site-relative paths into absolute URLs using a go-urlkit
// RouteManager. A resolver without a manager degrades to returning the
// site-relative path unchanged.
type URLResolver struct {
	manager   *urlkit.RouteManager
	group     string
	pageRoute string
	pathParam string

	mu         sync.RWMutex
	groupCache map[string]*urlkit.Group
}

// NewURLResolver constructs a resolver backed by go-urlkit.
func NewURLResolver(opts URLResolverOptions) *URLResolver {
	if opts.Group == "" {
		opts.Group = defaultGroup
	}
	if opts.PageRoute == "" {
		opts.PageRoute = defaultPageRoute
	}
	if opts.PathParam == "" {
		opts.PathParam = defaultPathParam
	}
	return &URLResolver{
		manager:    opts.Manager,
		group:      opts.Group,
		pageRoute:  opts.PageRoute,
		pathParam:  opts.PathParam,
		groupCache: make(map[string]*urlkit.Group),
	}
}

// NewSiteRouteManager builds the default route layout for a single bilingual
// site served from baseURL.
func NewSiteRouteManager(baseURL string) *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    defaultGroup,
				BaseURL: strings.TrimRight(baseURL, "/"),
				Paths: map[string]string{
					defaultPageRoute: "/:path",
					RouteSitemap:     "/sitemap.xml",
					RouteRobots:      "/robots.txt",
				},
			},
		},
	})
}

// Absolute resolves a site-relative path into an absolute URL. Without a
// configured manager the input path is returned as-is.
func (r *URLResolver) Absolute(sitePath string) (string, error) {
	if r == nil || r.manager == nil {
		return sitePath, nil
	}

	group, err := r.groupForPath(r.group)
	if err != nil {
		return "", err
	}
	builder, err := safeBuilder(group, r.pageRoute)
	if err != nil {
		return "", err
	}
	builder.WithParam(r.pathParam, strings.TrimPrefix(sitePath, "/"))

	url, err := builder.Build()
	if err != nil {
		return "", err
	}
	return unescapeSitePath(url), nil
}

// unescapeSitePath decodes route-param escaping so site paths keep their
// separators. Substitution can escape the path more than once (%2F, then the
// percent itself, yielding %252F), so decode until the value is stable.
func unescapeSitePath(raw string) string {
	for i := 0; i < 3; i++ {
		decoded, err := neturl.PathUnescape(raw)
		if err != nil || decoded == raw {
			return raw
		}
		raw = decoded
	}
	return raw
}

// Artifact resolves one of the named artifact routes, such as RouteSitemap.
func (r *URLResolver) Artifact(route string) (string, error) {
	if r == nil || r.manager == nil {
		switch route {
		case RouteSitemap:
			return "/sitemap.xml", nil
		case RouteRobots:
			return "/robots.txt", nil
		}
		return "", fmt.Errorf("generator: unknown artifact route %q", route)
	}

	group, err := r.groupForPath(r.group)
	if err != nil {
		return "", err
	}
	builder, err := safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	return builder.Build()
}

func (r *URLResolver) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}
	if current == nil {
		return nil, fmt.Errorf("generator: route group %q not found", path)
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("generator: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("generator: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("generator: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("generator: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("generator: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("generator: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
