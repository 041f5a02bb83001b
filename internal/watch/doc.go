// Package watch reruns reindexing when files in the content root change.
package watch
