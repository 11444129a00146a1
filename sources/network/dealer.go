package network

import (
	"scribe/sources/configuration"
	"scribe/sources/tracing"

	"golang.org/x/net/proxy"
)

// NewDialer returns a SOCKS5 dialer when a proxy address is configured,
// direct otherwise.
func NewDialer(config *configuration.Config, log *tracing.Logger) proxy.Dialer {
	if config.Network.ProxyAddress == "" {
		return proxy.Direct
	}

	var auth *proxy.Auth
	if config.Network.ProxyUser != "" {
		auth = &proxy.Auth{User: config.Network.ProxyUser, Password: config.Network.ProxyPassword}
	}

	dialer, err := proxy.SOCKS5("tcp", config.Network.ProxyAddress, auth, proxy.Direct)
	if err != nil {
		log.F("Failed to create proxy dialer", tracing.InnerError, err)
	}

	log.I("Egress proxy configured", tracing.ProxyUrl, config.Network.ProxyAddress)
	return dialer
}
