package identity

// Header tables mimic Edge 143 on Windows. They are independent of the cached
// user agent; callers that need both merge them (see httpclient.HeaderClient).

const secCHUA = `"Microsoft Edge";v="143", "Chromium";v="143", "Not A(Brand";v="24"`

var doubanHeaders = map[string]string{
	"Accept":             "application/json, text/plain, */*",
	"Accept-Language":    "zh-CN,zh;q=0.9,en;q=0.8",
	"Cache-Control":      "no-cache",
	"Pragma":             "no-cache",
	"Referer":            "https://movie.douban.com/",
	"sec-ch-ua":          secCHUA,
	"sec-ch-ua-mobile":   "?0",
	"sec-ch-ua-platform": `"Windows"`,
	"sec-fetch-dest":     "empty",
	"sec-fetch-mode":     "cors",
	"sec-fetch-site":     "same-site",
}

var doubanImageHeaders = map[string]string{
	"Accept":                   "image/avif,image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8",
	"Accept-Language":          "zh-CN,zh;q=0.9",
	"Cache-Control":            "no-cache",
	"Pragma":                   "no-cache",
	"Referer":                  "https://movie.douban.com/explore",
	"sec-ch-ua":                secCHUA,
	"sec-ch-ua-mobile":         "?0",
	"sec-ch-ua-platform":       `"Windows"`,
	"sec-fetch-dest":           "image",
	"sec-fetch-mode":           "no-cors",
	"sec-fetch-site":           "cross-site",
	"sec-fetch-storage-access": "none",
}

// DoubanHeaders returns the browser headers used for JSON API calls.
// Each call returns a fresh map.
func DoubanHeaders() map[string]string {
	return cloneHeaders(doubanHeaders)
}

// DoubanImageHeaders returns the browser headers used for cross-site image loads.
// Each call returns a fresh map.
func DoubanImageHeaders() map[string]string {
	return cloneHeaders(doubanImageHeaders)
}

func cloneHeaders(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
