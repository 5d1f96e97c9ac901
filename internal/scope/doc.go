// Package scope narrows and observes what content a package may write
// during installation.
//
// When an operator grants a plan the application or content scope, the
// handler intersects each package's declared write filter with the
// canonical application-root region (or its complement) and installs with
// the narrowed filter. A tracker wrapped around the progress listener
// counts every reported path falling outside the granted region; packages
// with misses declared a broader scope than they were granted. The tracker
// is advisory: it surfaces offenders, it does not block.
package scope
