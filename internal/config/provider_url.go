package config

import "fmt"

// defaultProviderURLTemplate is filled with the network name and the Infura project key
const defaultProviderURLTemplate = "https://%s.infura.io/v3/%s"

// ResolveDefaultURL returns the default RPC endpoint for a network.
// It only builds the string; reachability is never checked.
func ResolveDefaultURL(networkName, infuraKey string) string {
	return fmt.Sprintf(defaultProviderURLTemplate, networkName, infuraKey)
}
