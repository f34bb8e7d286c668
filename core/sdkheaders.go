package core

import (
	"fmt"
	"runtime"
)

// SDKVersion is reported in the User-Agent header.
const SDKVersion = "1.0.0"

const (
	headerUserAgent    = "User-Agent"
	headerSDKAnalytics = "X-IBMCloud-SDK-Analytics"
)

// HeaderProvider returns the diagnostic headers for one operation.
type HeaderProvider func(service, version, operation string) map[string]string

// SDKHeaders identifies the SDK, the service and the operation being called.
func SDKHeaders(service, version, operation string) map[string]string {
	return map[string]string{
		headerUserAgent: fmt.Sprintf("watson-apis-go-sdk/%s (lang=go; goVersion=%s; os=%s; arch=%s)",
			SDKVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH),
		headerSDKAnalytics: fmt.Sprintf("service_name=%s;service_version=%s;operation_id=%s",
			service, version, operation),
	}
}
