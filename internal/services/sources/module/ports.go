package module

import dom "credscan/internal/services/sources/domain"

// Ports holds the ports exposed by the sources module
type Ports struct {
	Checker dom.CheckerPort
}
