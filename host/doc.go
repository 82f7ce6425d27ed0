// Package host declares the contracts between an editor shell and the
// plugin host that drives it: the Processor back-reference, the PluginView
// callback surface (paint and resized), and the window resize limits the
// shell exposes.
//
// In the framework the original editor lived in, these were base-class
// overrides; here the shell implements PluginView and the host registers it
// with its window-lifecycle manager.
package host
