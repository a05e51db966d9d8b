// Package theme applies and persists the light/dark visual preference.
package theme
