package errutil

var SentryContext = sentryContext
