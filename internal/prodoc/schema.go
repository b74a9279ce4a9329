package prodoc

import "google.golang.org/protobuf/encoding/protowire"

// Field numbers of the rv.data records this package reads or writes. Records
// and fields not listed here are carried through as opaque bytes.

// rv.data.Presentation
const (
	PresentationApplicationInfo     protowire.Number = 1
	PresentationUUID                protowire.Number = 2
	PresentationName                protowire.Number = 3
	PresentationLastDateUsed        protowire.Number = 4
	PresentationLastModifiedDate    protowire.Number = 5
	PresentationBackground          protowire.Number = 8
	PresentationSelectedArrangement protowire.Number = 10
	PresentationArrangements        protowire.Number = 11
	PresentationCueGroups           protowire.Number = 12
	PresentationCues                protowire.Number = 13
)

// rv.data.ApplicationInfo and rv.data.Version
const (
	ApplicationInfoPlatform           protowire.Number = 1
	ApplicationInfoPlatformVersion    protowire.Number = 2
	ApplicationInfoApplication        protowire.Number = 3
	ApplicationInfoApplicationVersion protowire.Number = 4

	VersionMajor protowire.Number = 1
	VersionMinor protowire.Number = 2
	VersionPatch protowire.Number = 3
	VersionBuild protowire.Number = 4
)

// rv.data.Presentation.Arrangement
const (
	ArrangementUUID             protowire.Number = 1
	ArrangementName             protowire.Number = 2
	ArrangementGroupIdentifiers protowire.Number = 3
)

// rv.data.Presentation.CueGroup and rv.data.Group
const (
	CueGroupGroup          protowire.Number = 1
	CueGroupCueIdentifiers protowire.Number = 2

	GroupUUID                       protowire.Number = 1
	GroupName                       protowire.Number = 2
	GroupColor                      protowire.Number = 3
	GroupHotKey                     protowire.Number = 4
	GroupApplicationGroupIdentifier protowire.Number = 5
	GroupApplicationGroupName       protowire.Number = 6
)

// rv.data.Cue
const (
	CueUUID                 protowire.Number = 1
	CueName                 protowire.Number = 2
	CueCompletionTargetType protowire.Number = 3
	CueCompletionTargetUUID protowire.Number = 4
	CueCompletionActionType protowire.Number = 5
	CueCompletionActionUUID protowire.Number = 6
	CueActions              protowire.Number = 10
	CueIsEnabled            protowire.Number = 12
)

// rv.data.Action
const (
	ActionUUID      protowire.Number = 1
	ActionName      protowire.Number = 2
	ActionIsEnabled protowire.Number = 6
	ActionType      protowire.Number = 9
	ActionSlide     protowire.Number = 23

	// ActionTypePresentationSlide is Action.ActionType PRESENTATION_SLIDE.
	ActionTypePresentationSlide uint64 = 11
)

// rv.data.Action.SlideType and rv.data.PresentationSlide
const (
	SlideTypePresentation protowire.Number = 2

	PresentationSlideBaseSlide protowire.Number = 1
	PresentationSlideNotes     protowire.Number = 2
)

// rv.data.Slide and rv.data.Slide.Element
const (
	SlideElements             protowire.Number = 1
	SlideElementBuildOrder    protowire.Number = 2
	SlideDrawsBackgroundColor protowire.Number = 4
	SlideBackgroundColor      protowire.Number = 5
	SlideSize                 protowire.Number = 6
	SlideUUID                 protowire.Number = 7

	SlideElementElement protowire.Number = 1
)

// rv.data.Graphics.Element
const (
	ElementUUID    protowire.Number = 1
	ElementName    protowire.Number = 2
	ElementBounds  protowire.Number = 3
	ElementOpacity protowire.Number = 5
	ElementFill    protowire.Number = 9
	ElementText    protowire.Number = 13
	ElementHidden  protowire.Number = 16
)

// rv.data.Graphics.Text and rv.data.Graphics.Text.Attributes
const (
	TextAttributes        protowire.Number = 3
	TextRTFData           protowire.Number = 5
	TextVerticalAlignment protowire.Number = 6

	AttributesFont           protowire.Number = 1
	AttributesCapitalization protowire.Number = 2
	AttributesParagraphStyle protowire.Number = 5
	AttributesTextSolidFill  protowire.Number = 14

	FontName   protowire.Number = 1
	FontSize   protowire.Number = 2
	FontItalic protowire.Number = 3
	FontBold   protowire.Number = 4
	FontFamily protowire.Number = 5
	FontFace   protowire.Number = 6

	ParagraphStyleAlignment protowire.Number = 1
)

// rv.data.UUID, rv.data.Color, rv.data.Graphics.{Rect,Point,Size}
const (
	UUIDString protowire.Number = 1

	ColorRed   protowire.Number = 1
	ColorGreen protowire.Number = 2
	ColorBlue  protowire.Number = 3
	ColorAlpha protowire.Number = 4

	RectOrigin protowire.Number = 1
	RectSize   protowire.Number = 2

	PointX protowire.Number = 1
	PointY protowire.Number = 2

	SizeWidth  protowire.Number = 1
	SizeHeight protowire.Number = 2
)

// Text.Attributes.CapitalizationType values.
const (
	CapitalizationNone uint64 = iota
	CapitalizationAllCaps
	CapitalizationSmallCaps
	CapitalizationTitleCase
	CapitalizationStartCase
)

// Text.Attributes.Alignment values.
const (
	AlignmentLeft uint64 = iota
	AlignmentRight
	AlignmentCenter
	AlignmentJustified
	AlignmentNatural
)

// MinimumMajorVersion is the oldest application major version whose documents
// carry the record layout above.
const MinimumMajorVersion = 7
