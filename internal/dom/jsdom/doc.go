// Package jsdom adapts the browser DOM, reached through syscall/js, to the dom interfaces.
// It only has content in js/wasm builds.
package jsdom
