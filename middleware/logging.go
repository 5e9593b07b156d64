package middleware

import (
	"log"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shravanasati/zattiri/router"
)

// LoggingMiddleware logs every resolution without colors.
func LoggingMiddleware(logger *log.Logger) router.Middleware {
	if logger == nil {
		logger = log.Default()
	}

	return func(next router.Resolver) router.Resolver {
		return router.ResolverFunc(func(route string) router.Resolution {
			now := time.Now()
			res := next.Resolve(route)
			logger.Printf("%s %s %dB in %s\n", route, res.Kind, len(res.Body), time.Since(now))
			return res
		})
	}
}

// LoggingMiddlewareColored logs every resolution with the route and the
// resolution kind styled for a terminal.
func LoggingMiddlewareColored(logger *log.Logger) router.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	routeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)

	return func(next router.Resolver) router.Resolver {
		return router.ResolverFunc(func(route string) router.Resolution {
			now := time.Now()
			res := next.Resolve(route)

			styledKind := getKindStyle(res.Kind).Render(res.Kind.String())
			logger.Printf("%s %s %dB in %s\n", routeStyle.Render(route), styledKind, len(res.Body), time.Since(now))

			return res
		})
	}
}

// getKindStyle returns a lipgloss style for a resolution kind
func getKindStyle(kind router.Kind) lipgloss.Style {
	switch kind {
	case router.Matched:
		// Green
		return lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	case router.CustomNotFound:
		// Orange
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	case router.BuiltinNotFound:
		// Bright Red
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	}
}
