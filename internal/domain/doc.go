// Package domain contains the core business entities of the event planner:
// users who register and log in, and the calendar events they manage.
// It is independent of any specific infrastructure or delivery mechanism.
package domain
