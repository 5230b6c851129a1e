// Package main provides the rubotogen CLI, which generates the Java glue classes
// that let JRuby scripts implement Android components.
//
// Usage:
//
//	rubotogen [flags] gen subclass android.app.Activity --name MyActivity
//	rubotogen [flags] gen interface android.view.View.OnClickListener --name ClickHandler
//	rubotogen [flags] gen core all
//	rubotogen [flags] gen inheriting Activity --name MainActivity --script main_activity.rb
//
// Settings come from flags, RUBOTOGEN_* environment variables, rubotogen.yaml and
// the project's AndroidManifest.xml, in that order.
package main

import "github.com/joho/godotenv"

func main() {
	// A .env file is optional
	_ = godotenv.Load()

	Execute()
}
