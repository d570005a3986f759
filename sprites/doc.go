// Package sprites cuts skin bitmap sheets into named sprites and stitches
// them back together.
//
// A sheet is one of the well-known bitmaps in a skin archive (MAIN.BMP,
// CBUTTONS.BMP, ...). The Catalog describes where each sprite lives on its
// sheet. ExtractSheet and ComposeSheet are inverses of each other, so a
// skin can be unpacked into individual images, edited, and packed again.
//
// Real skins frequently ship truncated sheets. Sprites that fall partially
// outside their sheet are clipped, and sprites that fall entirely outside
// come back as empty images; neither is an error.
package sprites
