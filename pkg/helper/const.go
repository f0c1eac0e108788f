package helper

const (
	// TimeFormatLogger const
	TimeFormatLogger = "2006/01/02 15:04:05"

	// HeaderContentType const
	HeaderContentType = "Content-Type"
	// HeaderMIMEApplicationJSON const
	HeaderMIMEApplicationJSON = "application/json"
	// HeaderXRequestID const
	HeaderXRequestID = "X-Request-ID"
	// HeaderDisableTrace const, skip tracing for request with this header set to true
	HeaderDisableTrace = "X-Disable-Trace"

	// WORKDIR const for workdir environment
	WORKDIR = "WORKDIR"

	// Byte ...
	Byte uint64 = 1
	// KByte ...
	KByte = Byte * 1024
	// MByte ...
	MByte = KByte * 1024
)
