package tracker

import (
	"fmt"
	"net/url"
	"strings"
)

// ShareLink builds a WhatsApp deep link carrying the public tracking URL for
// an order. Pure string construction, no network involved.
func ShareLink(frontendURL, number string) string {
	trackURL := fmt.Sprintf("%s/order/tracking/%s", strings.TrimRight(frontendURL, "/"), number)
	message := fmt.Sprintf(
		"Halo!\n\nBerikut link untuk melacak pesanan kamu di Sidomulyo Printing:\nNomor Pesanan: %s\n\nLacak di sini: %s",
		number, trackURL,
	)
	return "https://wa.me/?text=" + url.QueryEscape(message)
}
