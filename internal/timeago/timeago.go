package timeago

import (
	"fmt"
	"time"
)

type unit struct {
	seconds int64
	label   string
}

// Ordre décroissant : la première unité qui donne au moins 1 est utilisée.
var units = []unit{
	{31536000, "y"},
	{2592000, "mo"},
	{604800, "w"},
	{86400, "d"},
	{3600, "h"},
	{60, "m"},
}

// Format renvoie un libellé compact du type "3h" ou "45s" pour l'écart
// entre t et now. Fonction pure : injecter un "now" fixe dans les tests.
func Format(t, now time.Time) string {
	elapsed := int64(now.Sub(t).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	for _, u := range units {
		if count := elapsed / u.seconds; count >= 1 {
			return fmt.Sprintf("%d%s", count, u.label)
		}
	}
	return fmt.Sprintf("%ds", elapsed)
}
