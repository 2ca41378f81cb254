package controller

import (
	"io"
	"mime/multipart"

	"ai-docqa-client/internal/constant"
	"ai-docqa-client/internal/dto"
	"ai-docqa-client/internal/entity"
	"ai-docqa-client/internal/pkg/serverutils"
	"ai-docqa-client/internal/presenter"
	"ai-docqa-client/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	State(ctx *fiber.Ctx) error
}

type uploadController struct {
	service service.IUploadService
}

func NewUploadController(service service.IUploadService) IUploadController {
	return &uploadController{service: service}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/upload/v1")
	h.Get("", c.State)
	h.Post("", c.Upload)
}

func (c *uploadController) State(ctx *fiber.Ctx) error {
	res := presenter.RenderUpload(c.service.State())
	return ctx.JSON(serverutils.SuccessResponse("Success get upload state", res))
}

// Upload accepts the multipart field "file". source=drop selects the drop
// entry point, anything else the picker.
func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid multipart form")
	}

	files := make([]entity.UploadFile, 0, len(form.File["file"]))
	for _, fh := range form.File["file"] {
		file, err := readUploadFile(fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Failed to read uploaded file")
		}
		files = append(files, file)
	}

	var (
		outcome   entity.UploadOutcome
		submitted bool
	)
	if ctx.FormValue("source") == constant.UploadSourceDrop {
		outcome, submitted = c.service.SubmitFromDrop(ctx.UserContext(), files)
	} else {
		outcome, submitted = c.service.SubmitFromPicker(ctx.UserContext(), files)
	}

	res := dto.UploadSubmitResponse{
		Submitted: submitted,
		Filename:  outcome.Filename,
		Chunks:    outcome.Chunks,
		State:     presenter.RenderUpload(c.service.State()),
	}
	if !submitted {
		return ctx.JSON(serverutils.SuccessResponse("No file selected", res))
	}
	return ctx.JSON(serverutils.SuccessResponse(outcome.Message, res))
}

// readUploadFile keeps the media type the browser declared for the part.
func readUploadFile(fh *multipart.FileHeader) (entity.UploadFile, error) {
	f, err := fh.Open()
	if err != nil {
		return entity.UploadFile{}, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return entity.UploadFile{}, err
	}

	return entity.UploadFile{
		Name:      fh.Filename,
		MediaType: fh.Header.Get("Content-Type"),
		Content:   content,
	}, nil
}
