// Package inliner adapts a CSS inliner to the render pipeline.
//
// Many mail clients ignore <style> blocks, so the final document has its
// rules copied into style attributes. NewPremailer does this with
// go-premailer and also extracts plain text with html2text; Noop leaves the
// document untouched.
//
//	in := inliner.NewPremailer(inliner.WithRemoveClasses(false))
//	res, err := in.Inline(ctx, doc)
//	if err != nil {
//		return err // wraps inliner.ErrInlineFailed
//	}
//	_ = res.HTML
package inliner
