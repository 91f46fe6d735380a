// Package board fetches and renders Västtrafik departure boards.
package board
