package render

import "github.com/trebuchet-org/netcfg/internal/usecase"

// Renderer writes the result of a use case
type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*usecase.ResolveConfigResult] = (*ConfigRenderer)(nil)
	_ Renderer[*usecase.ListNetworksResult]  = (*NetworksRenderer)(nil)
	_ Renderer[*usecase.ShowExplorerResult]  = (*ExplorerRenderer)(nil)
)
