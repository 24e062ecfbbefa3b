package constants

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetAllowedOrigins() []string {
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		return []string{"*"}
	}
	var res []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	return res
}

func GetLiveDebounce() time.Duration {
	return time.Duration(getPositiveInt("LIVE_DEBOUNCE_MS", 150)) * time.Millisecond
}

func GetKeyboardOctaves() int {
	return getPositiveInt("KEYBOARD_OCTAVES", 2)
}

func getPositiveInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// upper bound for POST /scan bodies
const MaxMidiUploadSize = 8 * 1024 * 1024
