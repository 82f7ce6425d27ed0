// Package uidesc parses declarative XML UI descriptions.
//
// A description declares a widget tree:
//
//	<UI version="1.0.0" direction="column" align="stretch" padding="12" gap="8">
//	  <Image id="header" src="logo_png"/>
//	  <Container direction="row" gap="6">
//	    <Label text="Drive" fontSize="16"/>
//	    <Slider id="drive" min="0" max="10" value="4" grow="true"/>
//	  </Container>
//	  <Button id="bypass" text="Bypass" background="#3A3A42"/>
//	</UI>
//
// Parse validates the whole document before returning, so a Description is
// either fully usable or absent; there is no partially parsed state. The
// version attribute is gated by major version: a 2.x document is rejected by
// a 1.x parser with a version_mismatch error.
//
// Descriptions are immutable. The loader walks them to build live widgets and
// may do so repeatedly (e.g. on reload) from the same Description.
package uidesc
