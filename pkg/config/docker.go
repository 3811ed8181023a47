package config

import (
	"net"
	"net/url"
	"os"
	"sync"
)

const dockerHostGateway = "host.docker.internal"

var (
	isDockerOnce   sync.Once
	isDockerResult bool
)

// IsRunningInDocker returns true if the application is running inside a Docker container.
// Detection is based on the presence of /.dockerenv file which exists in all Docker containers.
// The result is cached after the first call.
func IsRunningInDocker() bool {
	isDockerOnce.Do(func() {
		_, err := os.Stat("/.dockerenv")
		isDockerResult = err == nil
	})
	return isDockerResult
}

// applyDocker adjusts loopback addresses that cannot work inside a container:
// the HTTP transport must listen on all interfaces to be reachable, and a
// Nango or Airtable URL pointing at localhost means the Docker host.
func (c *Config) applyDocker(inDocker bool) {
	if !inDocker {
		return
	}
	if isLoopbackHost(c.BindAddr) {
		c.BindAddr = "0.0.0.0"
	}
	c.Airtable.BaseURL = resolveURLForDocker(c.Airtable.BaseURL)
	c.Nango.BaseURL = resolveURLForDocker(c.Nango.BaseURL)
}

// resolveURLForDocker swaps a loopback host for host.docker.internal,
// keeping the port and path.
func resolveURLForDocker(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || !isLoopbackHost(u.Hostname()) {
		return raw
	}
	if port := u.Port(); port != "" {
		u.Host = net.JoinHostPort(dockerHostGateway, port)
	} else {
		u.Host = dockerHostGateway
	}
	return u.String()
}

func isLoopbackHost(host string) bool {
	return host == "localhost" || host == "127.0.0.1"
}
