package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SetAuthCookies attaches the desk session cookies to the response.
func SetAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	setCookie(c, "accessToken", accessToken, AccessTokenExpiry)
	setCookie(c, "refreshToken", refreshToken, RefreshTokenExpiry)
}

// ClearAuthCookies expires both session cookies.
func ClearAuthCookies(c *gin.Context) {
	setCookie(c, "accessToken", "", -time.Second)
	setCookie(c, "refreshToken", "", -time.Second)
}

func setCookie(c *gin.Context, name, value string, expiry time.Duration) {
	secure := gin.Mode() != gin.DebugMode // plain HTTP only for local dev
	c.SetCookie(name, value, int(expiry.Seconds()), "/", "", secure, true)
}
