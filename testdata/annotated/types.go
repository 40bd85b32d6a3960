package annotated

import "time"

var defaultRegion = "us-east-1"

func newToken() string { return "tok-fixed" }

type Session struct {
	//fake:default newToken()
	Token string
	//fake:default time.Now().Add(time.Hour)
	ExpiresAt time.Time
	//fake:default
	Missing string
	//fake:default &defaultRegion
	Region *string
}
