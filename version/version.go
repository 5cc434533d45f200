// version/version.go
package version

import "fmt"

// AppName holds the name of the application
var AppName = "go-api-magento-client"

// Version holds the current version of the application
var Version = "1.2.0"

// UserAgentBase is the product token sent in the User-Agent header.
const UserAgentBase = "Magento REST API - Go Client"

// GetAppName returns the name of the application
func GetAppName() string {
	return AppName
}

// GetVersion returns the current version of the application
func GetVersion() string {
	return Version
}

// GetUserAgentHeader returns the User-Agent value sent with every request unless disabled.
func GetUserAgentHeader() string {
	return fmt.Sprintf("%s/%s", UserAgentBase, Version)
}
