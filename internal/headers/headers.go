package headers

import (
	http "github.com/bogdanfinn/fhttp"
)

// nextAction identifies the storefront's availability server action. It is
// an internal Next.js artifact, not a stable API, and changes whenever the
// shop redeploys.
const nextAction = "0bcc478922f9079b84673665f217b86d54bdfbb4"

var headerOrder = []string{
	"Accept",
	"Accept-Language",
	"Cache-Control",
	"Content-Type",
	"Next-Action",
	"Sec-CH-UA",
	"Sec-CH-UA-Mobile",
	"Sec-CH-UA-Platform",
	"Sec-Fetch-Dest",
	"Sec-Fetch-Mode",
	"Sec-Fetch-Site",
	"Sec-GPC",
}

// Build returns the fixed header set the storefront expects on an
// availability probe, with the order the browser would send them in.
func Build() http.Header {
	h := http.Header{}
	h.Set("Accept", "text/x-component")
	h.Set("Accept-Language", "it-IT,it;q=0.8")
	h.Set("Cache-Control", "no-cache")
	h.Set("Content-Type", "text/plain;charset=UTF-8")
	h.Set("Next-Action", nextAction)
	h.Set("Sec-CH-UA", `"Brave";v="131", "Chromium";v="131", "Not_A Brand";v="24"`)
	h.Set("Sec-CH-UA-Mobile", "?0")
	h.Set("Sec-CH-UA-Platform", `"Windows"`)
	h.Set("Sec-Fetch-Dest", "empty")
	h.Set("Sec-Fetch-Mode", "cors")
	h.Set("Sec-Fetch-Site", "same-origin")
	h.Set("Sec-GPC", "1")

	h[http.HeaderOrderKey] = headerOrder

	return h
}
