// Package authz decides, per caller and resource, whether a request may
// read or write. Handlers translate a Denial into 401, 403 or 404.
package authz

import "github.com/atopal/blog-backend/internal/models"

// Caller is the request identity. The zero value is the anonymous caller.
type Caller struct {
	ID            string
	Staff         bool
	Authenticated bool
}

var Anonymous = Caller{}

type Reason int

const (
	// ReasonUnauthenticated: the action needs a logged-in caller (401).
	ReasonUnauthenticated Reason = iota
	// ReasonForbidden: the caller is known but not allowed (403).
	ReasonForbidden
	// ReasonHidden: the resource must look nonexistent to this caller (404).
	// Used instead of ReasonForbidden when a 403 would leak existence.
	ReasonHidden
)

type Denial struct {
	Reason Reason
}

func (d *Denial) Error() string {
	switch d.Reason {
	case ReasonForbidden:
		return "forbidden"
	case ReasonHidden:
		return "not found"
	default:
		return "authentication required"
	}
}

func deny(r Reason) *Denial { return &Denial{Reason: r} }

// denyWrite is the anonymous/authenticated split shared by every
// unsafe-method rule: 401 for anonymous callers, 403 otherwise.
func denyWrite(c Caller) *Denial {
	if !c.Authenticated {
		return deny(ReasonUnauthenticated)
	}
	return deny(ReasonForbidden)
}

// CanReadPost allows anyone to read a published post and staff to read
// anything. Unpublished posts are hidden, not forbidden: non-staff get
// the same denial whether the post exists or not.
func CanReadPost(c Caller, p models.Post) error {
	if p.IsPublished || c.Staff {
		return nil
	}
	return deny(ReasonHidden)
}

// CanWritePost gates post create/update/delete to staff.
func CanWritePost(c Caller) error {
	if c.Authenticated && c.Staff {
		return nil
	}
	return denyWrite(c)
}

// CanCreateComment allows any authenticated caller.
func CanCreateComment(c Caller) error {
	if c.Authenticated {
		return nil
	}
	return deny(ReasonUnauthenticated)
}

// CanAccessComment gates single-comment read/update/delete to the
// comment's author or staff. Comments whose author was deleted are
// reachable by staff only.
func CanAccessComment(c Caller, cm models.Comment) error {
	if c.Staff {
		return nil
	}
	if !c.Authenticated {
		return deny(ReasonUnauthenticated)
	}
	if cm.AuthorID != nil && *cm.AuthorID == c.ID {
		return nil
	}
	return deny(ReasonForbidden)
}

// CanManageUsers gates the user directory (list, detail, update, delete).
func CanManageUsers(c Caller) error {
	if c.Authenticated && c.Staff {
		return nil
	}
	return denyWrite(c)
}

// FilterCommentPatch drops moderation fields a non-staff caller may not
// set. The request itself proceeds; this is an allow-list transform, not
// a rejection.
func FilterCommentPatch(c Caller, p models.CommentPatch) models.CommentPatch {
	if !c.Staff {
		p.IsApproved = nil
	}
	return p
}
